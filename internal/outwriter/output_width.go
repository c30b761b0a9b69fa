package outwriter

import (
	"os"

	"github.com/huangsam/awardgap/internal/contract"
	"golang.org/x/term"
)

// getTerminalWidth returns the width override, the detected terminal width or 80.
func getTerminalWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// getMaxTextColumnWidth calculates how wide each free-text column may be.
// fixedWidth covers the numeric columns and textColumns is the number of
// columns sharing the remaining space.
func getMaxTextColumnWidth(cfg *contract.Config, fixedWidth, textColumns int) int {
	// Reserve generous space for table borders, separators, and padding
	baseWidth := fixedWidth + 4*(textColumns+1)

	available := (getTerminalWidth(cfg) - baseWidth) / max(textColumns, 1)
	if available < 12 {
		return 12
	}
	if available > 60 {
		return 60
	}
	return available
}
