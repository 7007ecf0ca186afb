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

// PrintAssessment outputs the assessment, dispatching based on the output format configured.
func PrintAssessment(result schema.GovernanceAssessment, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONAssessment(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVAssessment(result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errParquetOutput
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAssessmentTable(result, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// printJSONAssessment handles opening the file and calling the JSON writer.
func printJSONAssessment(result schema.GovernanceAssessment, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// printCSVAssessment emits one row per alert, pattern and recommendation.
func printCSVAssessment(result schema.GovernanceAssessment, cfg *contract.Config) error {
	header := []string{"section", "type", "level", "message"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, a := range result.Alerts {
				if err := cw.Write([]string{"alert", string(a.Type), string(a.Severity), a.Message}); err != nil {
					return err
				}
			}
			for _, p := range result.Patterns {
				if err := cw.Write([]string{"pattern", string(p.Type), string(p.Tone), p.Message}); err != nil {
					return err
				}
			}
			for _, r := range result.Recommendations {
				if err := cw.Write([]string{"recommendation", r.Source, string(r.Priority), r.Action}); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeAssessmentTable generates and writes the human-readable tables.
func writeAssessmentTable(result schema.GovernanceAssessment, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	maxText := GetMaxTableTextWidth(cfg)

	// 1. Alerts
	if len(result.Alerts) > 0 {
		alertTable := tablewriter.NewWriter(writer)
		alertTable.Header([]string{"Severity", "Alert", "Message"})
		alertTable.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignLeft
		})
		var data [][]string
		for _, a := range result.Alerts {
			data = append(data, []string{
				contract.GetSeverityLabel(a.Severity, cfg.UseColors),
				string(a.Type),
				truncateText(a.Message, maxText),
			})
		}
		if err := alertTable.Bulk(data); err != nil {
			return err
		}
		if err := alertTable.Render(); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(writer, "No alerts."); err != nil {
			return err
		}
	}

	// 2. Patterns
	if len(result.Patterns) > 0 {
		patternTable := tablewriter.NewWriter(writer)
		patternTable.Header([]string{"Tone", "Pattern", "Message"})
		patternTable.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignLeft
		})
		var data [][]string
		for _, p := range result.Patterns {
			data = append(data, []string{
				string(p.Tone),
				string(p.Type),
				truncateText(p.Message, maxText),
			})
		}
		if err := patternTable.Bulk(data); err != nil {
			return err
		}
		if err := patternTable.Render(); err != nil {
			return err
		}
	}

	// 3. Recommendations
	if len(result.Recommendations) > 0 {
		recTable := tablewriter.NewWriter(writer)
		recTable.Header([]string{"Priority", "Source", "Action"})
		recTable.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignLeft
		})
		var data [][]string
		for _, r := range result.Recommendations {
			data = append(data, []string{
				contract.GetPriorityLabel(r.Priority, cfg.UseColors),
				r.Source,
				truncateText(r.Action, maxText),
			})
		}
		if err := recTable.Bulk(data); err != nil {
			return err
		}
		if err := recTable.Render(); err != nil {
			return err
		}
	}

	header := headerText("🔎", "Assessment", cfg.UseEmojis)
	if _, err := fmt.Fprintf(writer, "%s: %d alerts, %d patterns, %d recommendations\n",
		header, len(result.Alerts), len(result.Patterns), len(result.Recommendations)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "7d health delta: %s, 30d health delta: %s, consecutive declines: %s\n",
		formatDelta(result.Trend.HealthDelta7d), formatDelta(result.Trend.HealthDelta30d),
		strconv.Itoa(result.Trend.ConsecutiveDeclines)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
