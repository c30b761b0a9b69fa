package core

import (
	"regexp"
	"sort"
	"strings"

	"github.com/huangsam/awardgap/schema"
)

// producerSeparator matches a comma or the standalone word "and".
var producerSeparator = regexp.MustCompile(`,|\band\b`)

// SplitProducers returns the trimmed, non-empty producer names credited in field.
func SplitProducers(field string) []string {
	var names []string
	for _, token := range producerSeparator.Split(field, -1) {
		if name := strings.TrimSpace(token); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// groupByProducer maps each producer to the movies crediting them.
// Producers are returned in the order they were first seen. A name repeated
// within one movie is credited once.
func groupByProducer(movies []schema.Movie) ([]string, map[string][]schema.Movie) {
	var order []string
	groups := make(map[string][]schema.Movie)
	for _, m := range movies {
		if m.Producers == "" {
			continue
		}
		seen := make(map[string]struct{})
		for _, name := range SplitProducers(m.Producers) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			if _, ok := groups[name]; !ok {
				order = append(order, name)
			}
			groups[name] = append(groups[name], m)
		}
	}
	return order, groups
}

// winIntervals returns one interval per pair of consecutive wins.
func winIntervals(producer string, movies []schema.Movie) []schema.ProducerInterval {
	wins := make([]schema.Movie, 0, len(movies))
	for _, m := range movies {
		if m.Winner {
			wins = append(wins, m)
		}
	}
	if len(wins) < 2 {
		return nil
	}
	sort.SliceStable(wins, func(i, j int) bool { return wins[i].Year < wins[j].Year })

	intervals := make([]schema.ProducerInterval, 0, len(wins)-1)
	for i := 1; i < len(wins); i++ {
		intervals = append(intervals, schema.ProducerInterval{
			Producer:     producer,
			Interval:     wins[i].Year - wins[i-1].Year,
			PreviousWin:  wins[i-1].Year,
			FollowingWin: wins[i].Year,
		})
	}
	return intervals
}

// AnalyzeIntervals reports the producers with the smallest and the largest
// gap between consecutive wins. Ties at either extreme are all included, in
// producer order then chronological order. Two wins in the same year count
// as a gap of zero.
func AnalyzeIntervals(movies []schema.Movie) schema.IntervalReport {
	order, groups := groupByProducer(movies)

	byMagnitude := make(map[int][]schema.ProducerInterval)
	minValue, maxValue := 0, 0
	found := false
	for _, producer := range order {
		for _, iv := range winIntervals(producer, groups[producer]) {
			byMagnitude[iv.Interval] = append(byMagnitude[iv.Interval], iv)
			if !found || iv.Interval < minValue {
				minValue = iv.Interval
			}
			if !found || iv.Interval > maxValue {
				maxValue = iv.Interval
			}
			found = true
		}
	}

	if !found {
		return schema.EmptyIntervalReport()
	}
	return schema.IntervalReport{
		Min: byMagnitude[minValue],
		Max: append([]schema.ProducerInterval(nil), byMagnitude[maxValue]...),
	}
}
