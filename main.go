// Package main is the entry point for the awardgap CLI.
package main

import (
	"github.com/huangsam/awardgap/cmd"
	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/moviestore"
)

func main() {
	defer moviestore.CloseStore()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Failed to stop profiling", err)
		}
	}()
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
