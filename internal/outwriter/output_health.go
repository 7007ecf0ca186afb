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

// PrintHealthScore outputs the health score, dispatching based on the output format configured.
func PrintHealthScore(result schema.GovernanceHealthScore, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONHealth(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVHealth(result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errParquetOutput
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHealthTable(result, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// printJSONHealth handles opening the file and calling the JSON writer.
func printJSONHealth(result schema.GovernanceHealthScore, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// printCSVHealth handles opening the file and calling the CSV writer.
func printCSVHealth(result schema.GovernanceHealthScore, cfg *contract.Config) error {
	header := []string{"metric", "score", "max", "reason"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, m := range result.Metrics {
				rec := []string{m.Key, strconv.Itoa(m.Score), "25", m.Reason}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return cw.Write([]string{"composite", strconv.Itoa(result.Score), "100", string(result.Bucket)})
		})
	}, "Wrote CSV")
}

// writeHealthTable generates and writes the human-readable table.
func writeHealthTable(result schema.GovernanceHealthScore, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Metric", "Score", "Max", "Reason"})

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxText := GetMaxTableTextWidth(cfg)
	var data [][]string
	for _, m := range result.Metrics {
		data = append(data, []string{
			m.Label,
			strconv.Itoa(m.Score),
			"25",
			truncateText(m.Reason, maxText),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	header := headerText("🏥", "Governance health", cfg.UseEmojis)
	if _, err := fmt.Fprintf(writer, "%s: %d/100 (%s) over a %d-day window\n",
		header, result.Score, contract.GetBucketLabel(result.Bucket, cfg.UseColors), result.DataWindowDays); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// PrintSnapshotSaved confirms that a snapshot was persisted.
func PrintSnapshotSaved(snap schema.GovernanceSnapshot, cfg *contract.Config) error {
	header := headerText("📸", "Snapshot saved", cfg.UseEmojis)
	fmt.Printf("%s: health %d/100 at %s (%d proposals, %d active agents)\n",
		header, snap.HealthScore, snap.Timestamp, snap.TotalProposals, snap.ActiveAgents)
	return nil
}
