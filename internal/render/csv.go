// Package render serializes overlap reports for export formats.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/lexmatch-io/lexmatch/internal/domain/overlap"
)

const maxSummaryTextLen = 100

var csvHeader = []string{"Timestamp", "Reference Text", "Target Text", "Metric", "Score", "Category", "Items"}

// WriteCSV renders a report as CSV: a summary row identifying the inputs,
// then three rows per metric (overlapping, reference-only, target-only).
func WriteCSV(w io.Writer, rep overlap.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	summary := []string{
		rep.CreatedAt.Format("2006-01-02 15:04:05"),
		truncate(rep.Reference),
		truncate(rep.Target),
		"Summary",
		"", "", "",
	}
	if err := cw.Write(summary); err != nil {
		return fmt.Errorf("write csv summary: %w", err)
	}

	for _, m := range overlap.Metrics {
		res := rep.Results[m]
		rows := [][]string{
			{"", "", "", m.DisplayName(), fmt.Sprintf("%.3f", res.Score), "Overlapping", joinItems(res.Overlapping)},
			{"", "", "", m.DisplayName(), "", "Reference Only", joinItems(res.RefOnly)},
			{"", "", "", m.DisplayName(), "", "Target Only", joinItems(res.TargetOnly)},
		}
		for _, row := range rows {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func joinItems(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSummaryTextLen {
		return s
	}
	return string(runes[:maxSummaryTextLen]) + "..."
}
