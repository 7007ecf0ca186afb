// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/agoramind/govscope/internal/contract"
	"github.com/agoramind/govscope/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteHealth prints the health score using the configured output format.
func (ow *OutWriter) WriteHealth(result schema.GovernanceHealthScore, cfg *contract.Config, duration time.Duration) error {
	return PrintHealthScore(result, cfg, duration)
}

// WriteBalance prints the balance assessment using the configured output format.
func (ow *OutWriter) WriteBalance(result schema.GovernanceBalanceAssessment, cfg *contract.Config, duration time.Duration) error {
	return PrintBalance(result, cfg, duration)
}

// WritePipeline prints the pipeline report using the configured output format.
func (ow *OutWriter) WritePipeline(result schema.PipelineReport, cfg *contract.Config, duration time.Duration) error {
	return PrintPipeline(result, cfg, duration)
}

// WriteAssessment prints the assessment using the configured output format.
func (ow *OutWriter) WriteAssessment(result schema.GovernanceAssessment, cfg *contract.Config, duration time.Duration) error {
	return PrintAssessment(result, cfg, duration)
}

// WriteTrends prints the trend summary using the configured output format.
func (ow *OutWriter) WriteTrends(trend schema.TrendSummary, snaps []schema.GovernanceSnapshot, cfg *contract.Config, duration time.Duration) error {
	return PrintTrends(trend, snaps, cfg, duration)
}

// GetMaxTableTextWidth calculates the maximum width for free-text columns in
// table output based on terminal width.
func GetMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns plus borders, separators and padding
	baseWidth := 35

	available := termWidth - baseWidth
	if available < 20 {
		// Minimum reasonable text width
		return 20
	}
	if available > 90 {
		// Maximum text width to prevent overly long lines
		return 90
	}
	return available
}
