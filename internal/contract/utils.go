package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/agoramind/govscope/schema"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)     // CriticalColor represents standard danger.
	WarningColor  = color.New(color.FgMagenta, color.Bold) // WarningColor represents strong, distinct warning.
	CautionColor  = color.New(color.FgYellow)              // CautionColor represents standard caution, not bold.
	GoodColor     = color.New(color.FgGreen)               // GoodColor represents a healthy signal.
	InfoColor     = color.New(color.FgCyan)                // InfoColor represents informational / low-priority signal.
)

// GetBucketLabel returns a colored label for a health bucket when colors are
// enabled, otherwise the plain bucket name.
func GetBucketLabel(bucket schema.HealthBucket, useColors bool) string {
	text := string(bucket)
	if !useColors {
		return text
	}
	switch bucket {
	case schema.BucketThriving:
		return GoodColor.Sprint(text)
	case schema.BucketHealthy:
		return InfoColor.Sprint(text)
	case schema.BucketAttention:
		return CautionColor.Sprint(text)
	default: // Critical
		return CriticalColor.Sprint(text)
	}
}

// GetSeverityLabel returns a colored label for an alert severity when colors
// are enabled, otherwise the plain severity name.
func GetSeverityLabel(severity schema.Severity, useColors bool) string {
	text := string(severity)
	if !useColors {
		return text
	}
	switch severity {
	case schema.SeverityCritical:
		return CriticalColor.Sprint(text)
	case schema.SeverityWarning:
		return WarningColor.Sprint(text)
	default: // info
		return InfoColor.Sprint(text)
	}
}

// GetPriorityLabel returns a colored label for a recommendation priority when
// colors are enabled, otherwise the plain priority name.
func GetPriorityLabel(priority schema.Priority, useColors bool) string {
	text := string(priority)
	if !useColors {
		return text
	}
	switch priority {
	case schema.PriorityHigh:
		return CriticalColor.Sprint(text)
	case schema.PriorityMedium:
		return CautionColor.Sprint(text)
	default: // low
		return InfoColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".govscope_snapshots.db"
	}
	return filepath.Join(homeDir, ".govscope_snapshots.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
