package experiment

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTable renders rows as an aligned text table under header.
func WriteTable[R Row](w io.Writer, header []string, rows []R) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("WriteTable: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(r.Cells(), "\t")); err != nil {
			return fmt.Errorf("WriteTable: %w", err)
		}
	}

	return tw.Flush()
}

// WriteLaTeX renders rows as LaTeX tabular lines: `a & b & c \\`.
func WriteLaTeX[R Row](w io.Writer, rows []R) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s \\\\\n", strings.Join(r.Cells(), " & ")); err != nil {
			return fmt.Errorf("WriteLaTeX: %w", err)
		}
	}

	return nil
}

// WriteSummary prints the WorstCaseReport in the same plain form as the tables.
func WriteSummary(w io.Writer, rep *WorstCaseReport) error {
	_, err := fmt.Fprintf(w,
		"nodes: %d\ngraphs: %d\ntested: %d\nworst ratio: %.2f\noptimal: %d\nmean ratio: %.3f\nworst graph: %v\n",
		rep.Nodes, rep.Graphs, len(rep.Ratios), rep.Worst, rep.Optimal, rep.Mean, rep.WorstEdges)
	if err != nil {
		return fmt.Errorf("WriteSummary: %w", err)
	}

	return nil
}
