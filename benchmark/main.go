// Package main provides a performance benchmarking tool for the awardgap CLI.
// It generates synthetic movie lists of increasing size, ingests each one into a
// fresh SQLite store, re-ingests it to measure the update path, then times the
// interval report against the populated store. Results are written as CSV.
//
// Prerequisites:
// - awardgap binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated movie lists and SQLite files
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the timings of one command against one dataset.
type BenchmarkResult struct {
	Dataset  string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir   string
	Timeout   time.Duration
	Runs      int
	Sizes     []int
	Producers int
	Seed      uint64
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:   os.Args[1],
		Timeout:   5 * time.Minute,
		Runs:      4,
		Sizes:     []int{1_000, 10_000, 50_000},
		Producers: 500,
		Seed:      42,
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the awardgap binary and the work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("awardgap"); err != nil {
		return fmt.Errorf("awardgap binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work dir %s: %w", config.WorkDir, err)
	}
	return nil
}

// runBenchmarks executes the ingest and intervals suites for every dataset size
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d runs\n",
		len(config.Sizes), config.Timeout, config.Runs)

	rng := rand.New(rand.NewPCG(config.Seed, config.Seed))
	for _, size := range config.Sizes {
		dataset := fmt.Sprintf("movies_%d", size)
		fmt.Printf("Benchmarking %s\n", dataset)

		listPath := filepath.Join(config.WorkDir, dataset+".csv")
		if err := generateMovieList(listPath, size, config.Producers, rng); err != nil {
			fmt.Printf("  Skipping %s: %v\n", dataset, err)
			continue
		}

		dbPath := filepath.Join(config.WorkDir, dataset+".db")
		_ = os.Remove(dbPath)
		env := []string{
			"AWARDGAP_STORE_BACKEND=sqlite",
			"AWARDGAP_STORE_DB_CONNECT=" + dbPath,
		}

		// The first ingest inserts, the rest update every row.
		results = append(results, runBenchmarkSuite(config, dataset, "ingest", env, "ingest", listPath))
		results = append(results, runBenchmarkSuite(config, dataset, "intervals", env, "intervals"))
	}

	return results
}

// generateMovieList writes size synthetic movies where each movie has one to three producers
func generateMovieList(path string, size, producers int, rng *rand.Rand) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	writer.Comma = ';'
	if err := writer.Write([]string{"year", "title", "studios", "producers", "winner"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range size {
		year := 1950 + rng.IntN(75)
		credits := make([]string, 1+rng.IntN(3))
		for j := range credits {
			credits[j] = fmt.Sprintf("Producer %d", rng.IntN(producers))
		}
		winner := ""
		if rng.IntN(5) == 0 {
			winner = "yes"
		}
		record := []string{
			fmt.Sprint(year),
			fmt.Sprintf("Movie %d", i),
			fmt.Sprintf("Studio %d", rng.IntN(50)),
			joinCredits(credits),
			winner,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// joinCredits renders producers as "A, B and C"
func joinCredits(names []string) string {
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// runBenchmarkSuite runs a command config.Runs times and reports the cold run and warm average
func runBenchmarkSuite(config BenchmarkConfig, dataset, command string, env []string, args ...string) BenchmarkResult {
	fmt.Printf("Running %s on %s (%d runs)\n", command, dataset, config.Runs)

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		if elapsed, ok := runOnce(config, env, args); ok {
			times = append(times, elapsed)
		}
	}

	coldTime, warmAvg := "TIMEOUT", "TIMEOUT"
	if len(times) > 0 {
		coldTime = fmt.Sprintf("%.3fs", times[0])
	}
	if len(times) > 1 {
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(times)-1))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTime, warmAvg)

	return BenchmarkResult{
		Dataset:  dataset,
		Command:  command,
		ColdTime: coldTime,
		WarmTime: warmAvg,
	}
}

// runOnce executes awardgap with args and returns the elapsed seconds on success
func runOnce(config BenchmarkConfig, env, args []string) (float64, bool) {
	start := time.Now()

	cmd := exec.Command("awardgap", args...)
	cmd.Env = append(os.Environ(), env...)

	done := make(chan bool, 1)
	var output []byte
	var cmdErr error

	go func() {
		output, cmdErr = cmd.CombinedOutput()
		done <- true
	}()

	select {
	case <-done:
		if cmdErr == nil && isSuccess(output, args[0]) {
			return time.Since(start).Seconds(), true
		}
		fmt.Printf("  Run failed: %v\n%s\n", cmdErr, string(output))
	case <-time.After(config.Timeout):
		_ = cmd.Process.Kill()
		fmt.Printf("  Run timed out after %v\n", config.Timeout)
	}
	return 0, false
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)
	if command == "ingest" {
		return strings.Contains(outputStr, "movies upserted in")
	}
	return strings.Contains(outputStr, "Analysis completed in")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/awardgap_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"dataset", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "ingest", "Ingest:")
	printCommandSummary(results, "intervals", "Intervals:")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-14s: Cold: %s, Warm: %s\n", result.Dataset, result.ColdTime, result.WarmTime)
		}
	}
}
