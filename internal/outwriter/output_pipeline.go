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

// PrintPipeline outputs the pipeline report, dispatching based on the output format configured.
func PrintPipeline(result schema.PipelineReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONPipeline(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVPipeline(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errParquetOutput
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePipelineTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// printJSONPipeline handles opening the file and calling the JSON writer.
func printJSONPipeline(result schema.PipelineReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// printCSVPipeline emits phase counts plus one row per classified agent.
func printCSVPipeline(result schema.PipelineReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"section", "name", "value"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			phases := [][]string{
				{"phase", string(schema.PhaseDiscussion), strconv.Itoa(result.Pipeline.Discussion)},
				{"phase", string(schema.PhaseVoting), strconv.Itoa(result.Pipeline.Voting)},
				{"phase", string(schema.PhaseExtendedVoting), strconv.Itoa(result.Pipeline.ExtendedVoting)},
				{"phase", string(schema.PhaseReadyToImplement), strconv.Itoa(result.Pipeline.ReadyToImplement)},
				{"phase", string(schema.PhaseImplemented), strconv.Itoa(result.Pipeline.Implemented)},
				{"phase", string(schema.PhaseRejected), strconv.Itoa(result.Pipeline.Rejected)},
				{"phase", string(schema.PhaseInconclusive), strconv.Itoa(result.Pipeline.Inconclusive)},
				{"phase", "total", strconv.Itoa(result.Pipeline.Total)},
			}
			for _, rec := range phases {
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			for _, role := range result.Roles {
				primary := ""
				if role.Primary != nil {
					primary = string(*role.Primary)
				}
				if err := cw.Write([]string{"role", role.Login, primary}); err != nil {
					return err
				}
			}
			throughput := [][]string{
				{"throughput", "discussion_to_voting_hours", formatOptionalHours(result.Throughput.DiscussionToVotingHours, fmtFloat)},
				{"throughput", "voting_to_terminal_hours", formatOptionalHours(result.Throughput.VotingToTerminalHours, fmtFloat)},
				{"throughput", "creation_to_terminal_hours", formatOptionalHours(result.Throughput.CreationToTerminalHours, fmtFloat)},
			}
			for _, rec := range throughput {
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writePipelineTable generates and writes the human-readable tables.
func writePipelineTable(result schema.PipelineReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	// 1. Phase table
	phaseTable := tablewriter.NewWriter(writer)
	phaseTable.Header([]string{"Phase", "Count"})
	phaseTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	phaseData := [][]string{
		{string(schema.PhaseDiscussion), strconv.Itoa(result.Pipeline.Discussion)},
		{string(schema.PhaseVoting), strconv.Itoa(result.Pipeline.Voting)},
		{string(schema.PhaseExtendedVoting), strconv.Itoa(result.Pipeline.ExtendedVoting)},
		{string(schema.PhaseReadyToImplement), strconv.Itoa(result.Pipeline.ReadyToImplement)},
		{string(schema.PhaseImplemented), strconv.Itoa(result.Pipeline.Implemented)},
		{string(schema.PhaseRejected), strconv.Itoa(result.Pipeline.Rejected)},
		{string(schema.PhaseInconclusive), strconv.Itoa(result.Pipeline.Inconclusive)},
	}
	if err := phaseTable.Bulk(phaseData); err != nil {
		return err
	}
	if err := phaseTable.Render(); err != nil {
		return err
	}

	// 2. Role table
	roleTable := tablewriter.NewWriter(writer)
	roleTable.Header([]string{"Agent", "Primary Role", "Coder", "Reviewer", "Proposer", "Discussant"})
	roleTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	var roleData [][]string
	for _, role := range result.Roles {
		primary := "none"
		if role.Primary != nil {
			primary = string(*role.Primary)
		}
		roleData = append(roleData, []string{
			role.Login,
			primary,
			fmtFloat(role.Scores[schema.RoleCoder]),
			fmtFloat(role.Scores[schema.RoleReviewer]),
			fmtFloat(role.Scores[schema.RoleProposer]),
			fmtFloat(role.Scores[schema.RoleDiscussant]),
		})
	}
	if err := roleTable.Bulk(roleData); err != nil {
		return err
	}
	if err := roleTable.Render(); err != nil {
		return err
	}

	header := headerText("🚏", "Pipeline", cfg.UseEmojis)
	if _, err := fmt.Fprintf(writer, "%s: %d proposals, %d resolved, %d active\n",
		header, result.Pipeline.Total, result.Throughput.Resolved, result.Throughput.Active); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Median discussion to voting: %s, voting to decision: %s, creation to decision: %s\n",
		formatOptionalHours(result.Throughput.DiscussionToVotingHours, fmtFloat),
		formatOptionalHours(result.Throughput.VotingToTerminalHours, fmtFloat),
		formatOptionalHours(result.Throughput.CreationToTerminalHours, fmtFloat)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
