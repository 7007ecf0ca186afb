package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/agoramind/govscope/internal/contract"
	"github.com/agoramind/govscope/schema"
)

// PrintBalance outputs the balance assessment, dispatching based on the output format configured.
func PrintBalance(result schema.GovernanceBalanceAssessment, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONBalance(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVBalance(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errParquetOutput
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBalanceTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// printJSONBalance handles opening the file and calling the JSON writer.
func printJSONBalance(result schema.GovernanceBalanceAssessment, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// printCSVBalance emits one row per weighted agent plus summary rows.
func printCSVBalance(result schema.GovernanceBalanceAssessment, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"section", "name", "value", "detail"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, inf := range result.Power.Influences {
				rec := []string{"influence", inf.Login, fmtFloat(inf.Share * 100), fmtFloat(inf.Weight)}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			rows := [][]string{
				{"power", string(result.Power.Level), fmtFloat(result.Power.TopShare * 100), result.Power.Reason},
				{"diversity", strconv.Itoa(result.Diversity.Score), strings.Join(result.Diversity.Missing, "|"), result.Diversity.Reason},
				{"responsiveness", string(result.Responsiveness.Bucket), formatOptionalHours(result.Responsiveness.MedianHours, fmtFloat), result.Responsiveness.Reason},
				{"verdict", string(result.Verdict), "", result.VerdictReason},
			}
			for _, rec := range rows {
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeBalanceTable generates and writes the human-readable table.
func writeBalanceTable(result schema.GovernanceBalanceAssessment, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Rank", "Agent", "Weight", "Share"})

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, inf := range result.Power.Influences {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			inf.Login,
			fmtFloat(inf.Weight),
			fmtFloat(inf.Share*100) + "%",
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	header := headerText("⚖️", "Balance", cfg.UseEmojis)
	if _, err := fmt.Fprintf(writer, "%s: %s (%s)\n", header, result.Verdict, result.VerdictReason); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Power: %s. %s\n", result.Power.Level, result.Power.Reason); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Role diversity: %d/100. %s\n", result.Diversity.Score, result.Diversity.Reason); err != nil {
		return err
	}
	if len(result.Diversity.Missing) > 0 {
		if _, err := fmt.Fprintf(writer, "Missing coverage: %s\n", strings.Join(result.Diversity.Missing, ", ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Responsiveness: %s (median %s). %s\n",
		result.Responsiveness.Bucket, formatOptionalHours(result.Responsiveness.MedianHours, fmtFloat), result.Responsiveness.Reason); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
