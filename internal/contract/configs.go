package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/agoramind/govscope/schema"
)

// Default values for configuration.
const (
	DefaultHistoryLimit = 90
	MaxHistoryLimit     = 1000
	DefaultPrecision    = 1
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ThresholdsRawInput holds threshold overrides from the YAML config file.
// Only provided fields override the defaults.
type ThresholdsRawInput struct {
	ThrivingMin  *int `mapstructure:"thriving_min"`
	HealthyMin   *int `mapstructure:"healthy_min"`
	AttentionMin *int `mapstructure:"attention_min"`

	DeclineStreak         *int     `mapstructure:"decline_streak"`
	CriticalScore         *int     `mapstructure:"critical_score"`
	ParticipationDrop     *int     `mapstructure:"participation_drop"`
	FollowThroughGap      *int     `mapstructure:"follow_through_gap"`
	QueueOpenMin          *int     `mapstructure:"queue_open_min"`
	QueueRatio            *float64 `mapstructure:"queue_ratio"`
	QueueMergeWindowHours *float64 `mapstructure:"queue_merge_window_hours"`
	ReviewShare           *float64 `mapstructure:"review_share"`

	OligarchyTopTwoShare *float64 `mapstructure:"oligarchy_top_two_share"`
	ConcentratedTopShare *float64 `mapstructure:"concentrated_top_share"`
	ModerateTopShare     *float64 `mapstructure:"moderate_top_share"`
	FastResponseHours    *float64 `mapstructure:"fast_response_hours"`
	NormalResponseHours  *float64 `mapstructure:"normal_response_hours"`
	SlowResponseHours    *float64 `mapstructure:"slow_response_hours"`

	DominantShare       *float64 `mapstructure:"dominant_share"`
	RubberStampApproval *float64 `mapstructure:"rubber_stamp_approval"`
	RubberStampComments *float64 `mapstructure:"rubber_stamp_comments"`
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	ActivityPath string
	Precision    int
	Output       schema.OutputMode
	OutputFile   string
	Width        int // Terminal width override (0 = auto-detect)

	HistoryLimit int

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext

	Thresholds schema.Thresholds

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ActivityPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile        string `mapstructure:"output-file"`
	Precision         int    `mapstructure:"precision"`
	Output            string `mapstructure:"output"`
	Width             int    `mapstructure:"width"`
	History           int    `mapstructure:"history"`
	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`
	Emoji             string `mapstructure:"emoji"`
	Color             string `mapstructure:"color"`

	// --- Threshold overrides from config file ---
	Thresholds ThresholdsRawInput `mapstructure:"thresholds"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	cfg.ActivityPath = strings.TrimSpace(input.ActivityPathStr)
	return nil
}

// validateSimpleInputs processes and validates all non-threshold fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- History Validation ---
	if input.History <= 0 || input.History > MaxHistoryLimit {
		return fmt.Errorf("history must be greater than 0 and cannot exceed %d (received %d)", MaxHistoryLimit, input.History)
	}
	cfg.HistoryLimit = input.History

	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfig validates the snapshot backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.SnapshotBackend = schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.SnapshotBackend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, none", input.SnapshotBackend)
	}
	cfg.SnapshotDBConnect = input.SnapshotDBConnect
	return ValidateDatabaseConnectionString(cfg.SnapshotBackend, cfg.SnapshotDBConnect)
}

// processThresholds merges config file overrides over the default cutoffs
// and validates the result.
func processThresholds(cfg *Config, input *ConfigRawInput) error {
	th := schema.DefaultThresholds()
	raw := input.Thresholds

	if raw.ThrivingMin != nil {
		th.ThrivingMin = *raw.ThrivingMin
	}
	if raw.HealthyMin != nil {
		th.HealthyMin = *raw.HealthyMin
	}
	if raw.AttentionMin != nil {
		th.AttentionMin = *raw.AttentionMin
	}
	if raw.DeclineStreak != nil {
		th.DeclineStreak = *raw.DeclineStreak
	}
	if raw.CriticalScore != nil {
		th.CriticalScore = *raw.CriticalScore
	}
	if raw.ParticipationDrop != nil {
		th.ParticipationDrop = *raw.ParticipationDrop
	}
	if raw.FollowThroughGap != nil {
		th.FollowThroughGap = *raw.FollowThroughGap
	}
	if raw.QueueOpenMin != nil {
		th.QueueOpenMin = *raw.QueueOpenMin
	}
	if raw.QueueRatio != nil {
		th.QueueRatio = *raw.QueueRatio
	}
	if raw.QueueMergeWindowHours != nil {
		th.QueueMergeWindowHours = *raw.QueueMergeWindowHours
	}
	if raw.ReviewShare != nil {
		th.ReviewShare = *raw.ReviewShare
	}
	if raw.OligarchyTopTwoShare != nil {
		th.OligarchyTopTwoShare = *raw.OligarchyTopTwoShare
	}
	if raw.ConcentratedTopShare != nil {
		th.ConcentratedTopShare = *raw.ConcentratedTopShare
	}
	if raw.ModerateTopShare != nil {
		th.ModerateTopShare = *raw.ModerateTopShare
	}
	if raw.FastResponseHours != nil {
		th.FastResponseHours = *raw.FastResponseHours
	}
	if raw.NormalResponseHours != nil {
		th.NormalResponseHours = *raw.NormalResponseHours
	}
	if raw.SlowResponseHours != nil {
		th.SlowResponseHours = *raw.SlowResponseHours
	}
	if raw.DominantShare != nil {
		th.DominantShare = *raw.DominantShare
	}
	if raw.RubberStampApproval != nil {
		th.RubberStampApproval = *raw.RubberStampApproval
	}
	if raw.RubberStampComments != nil {
		th.RubberStampComments = *raw.RubberStampComments
	}

	if !(th.ThrivingMin > th.HealthyMin && th.HealthyMin > th.AttentionMin && th.AttentionMin > 0) {
		return fmt.Errorf("bucket cutoffs must satisfy thriving > healthy > attention > 0 (received %d/%d/%d)",
			th.ThrivingMin, th.HealthyMin, th.AttentionMin)
	}
	if th.ThrivingMin > 100 {
		return fmt.Errorf("thriving cutoff cannot exceed 100 (received %d)", th.ThrivingMin)
	}
	if !(th.FastResponseHours < th.NormalResponseHours && th.NormalResponseHours < th.SlowResponseHours) {
		return fmt.Errorf("response cutoffs must satisfy fast < normal < slow (received %.1f/%.1f/%.1f)",
			th.FastResponseHours, th.NormalResponseHours, th.SlowResponseHours)
	}
	for name, share := range map[string]float64{
		"oligarchy_top_two_share": th.OligarchyTopTwoShare,
		"concentrated_top_share":  th.ConcentratedTopShare,
		"moderate_top_share":      th.ModerateTopShare,
		"review_share":            th.ReviewShare,
		"dominant_share":          th.DominantShare,
		"rubber_stamp_approval":   th.RubberStampApproval,
	} {
		if share <= 0 || share > 1 {
			return fmt.Errorf("threshold %s must be in (0, 1] (received %.3f)", name, share)
		}
	}

	cfg.Thresholds = th
	return nil
}
