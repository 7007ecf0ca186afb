package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/agoramind/govscope/internal/contract"
	"github.com/agoramind/govscope/schema"
)

// trendsOutput is the combined JSON shape for the trends report.
type trendsOutput struct {
	Trend     schema.TrendSummary         `json:"trend"`
	Snapshots []schema.GovernanceSnapshot `json:"snapshots"`
}

// PrintTrends outputs the trend summary, dispatching based on the output format configured.
func PrintTrends(trend schema.TrendSummary, snaps []schema.GovernanceSnapshot, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONTrends(trend, snaps, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVTrends(snaps, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errParquetOutput
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendsTable(trend, snaps, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// printJSONTrends handles opening the file and calling the JSON writer.
func printJSONTrends(trend schema.TrendSummary, snaps []schema.GovernanceSnapshot, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, trendsOutput{Trend: trend, Snapshots: snaps})
	}, "Wrote JSON")
}

// printCSVTrends emits one row per stored snapshot.
func printCSVTrends(snaps []schema.GovernanceSnapshot, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{
		"captured_at", "health", "participation", "pipeline", "followthrough", "consensus",
		"active_proposals", "total_proposals", "active_agents", "velocity",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, s := range snaps {
				rec := []string{
					s.Timestamp,
					strconv.Itoa(s.HealthScore),
					strconv.Itoa(s.Participation),
					strconv.Itoa(s.PipelineFlow),
					strconv.Itoa(s.FollowThrough),
					strconv.Itoa(s.Consensus),
					strconv.Itoa(s.ActiveProposals),
					strconv.Itoa(s.TotalProposals),
					strconv.Itoa(s.ActiveAgents),
					fmtFloat(s.Velocity),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeTrendsTable generates and writes the human-readable table.
func writeTrendsTable(trend schema.TrendSummary, snaps []schema.GovernanceSnapshot, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Captured", "Health", "Part", "Pipe", "Follow", "Cons", "Active", "Agents", "Velocity"})

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, s := range snaps {
		captured := s.Timestamp
		if t := s.Time(); !t.IsZero() {
			captured = t.Format("2006-01-02 15:04")
		}
		data = append(data, []string{
			captured,
			strconv.Itoa(s.HealthScore),
			strconv.Itoa(s.Participation),
			strconv.Itoa(s.PipelineFlow),
			strconv.Itoa(s.FollowThrough),
			strconv.Itoa(s.Consensus),
			strconv.Itoa(s.ActiveProposals),
			strconv.Itoa(s.ActiveAgents),
			fmtFloat(s.Velocity),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	header := headerText("📈", "Trends", cfg.UseEmojis)
	if _, err := fmt.Fprintf(writer, "%s over %d snapshots\n", header, len(snaps)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "7d deltas: health %s, participation %s, pipeline %s, follow-through %s, consensus %s\n",
		formatDelta(trend.HealthDelta7d), formatDelta(trend.ParticipationDelta7d), formatDelta(trend.PipelineDelta7d),
		formatDelta(trend.FollowThroughDelta7d), formatDelta(trend.ConsensusDelta7d)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "30d health delta: %s, consecutive declines: %d\n",
		formatDelta(trend.HealthDelta30d), trend.ConsecutiveDeclines); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
