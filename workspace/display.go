package workspace

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	unchangedColor = color.New(color.FgGreen)
	changedColor   = color.New(color.FgYellow)
	failedColor    = color.New(color.FgRed)
)

// DisplaySummary writes one status line per file followed by the totals
func DisplaySummary(w io.Writer, summary Summary) {
	for _, r := range summary.Results {
		switch {
		case r.Err != nil:
			failedColor.Fprintf(w, "  failed     %s: %v\n", r.Path, r.Err)
		case r.Written:
			changedColor.Fprintf(w, "  written    %s\n", r.Path)
		case r.Changed:
			changedColor.Fprintf(w, "  rewritable %s\n", r.Path)
		default:
			unchangedColor.Fprintf(w, "  unchanged  %s\n", r.Path)
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintf(w, "Files processed: %d\n", len(summary.Results))
	fmt.Fprintf(w, "Files rewritten: %d\n", summary.Changed)
	if summary.Failed > 0 {
		failedColor.Fprintf(w, "Files failed: %d\n", summary.Failed)
	} else {
		fmt.Fprintf(w, "Files failed: %d\n", summary.Failed)
	}
}

// DisplayUsage writes a table of usage counts and decisions for every
// rewritten import
func DisplayUsage(w io.Writer, summary Summary) {
	for _, r := range summary.Results {
		if r.Err != nil {
			failedColor.Fprintf(w, "%s: %v\n\n", r.Path, r.Err)
			continue
		}
		for _, imp := range r.Imports {
			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.Style().Options.DrawBorder = false
			tbl.Style().Options.SeparateColumns = false
			tbl.Style().Format.Footer = text.FormatDefault
			tbl.AppendHeader(table.Row{"imported", "local", "uses", "decision"})
			for _, name := range imp.Names {
				tbl.AppendRow(table.Row{name.Imported, name.Local, name.Count, name.Decision})
			}

			namespace := imp.Namespace
			if imp.Generated {
				namespace += " (generated)"
			}
			tbl.AppendFooter(table.Row{"namespace", namespace})

			fmt.Fprintf(w, "%s:\n%s\n\n", r.Path, tbl.Render())
		}
	}
}
