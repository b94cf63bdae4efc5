package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	perr "qualifiers/internal/platform/errors"
	"qualifiers/internal/services/qualifiers/domain"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// printSummary renders the run outcome as a table, followed by per kind failures
func printSummary(w io.Writer, sum domain.Summary, runErr error) {
	title := color.New(color.FgCyan, color.Bold)
	title.Fprintf(w, "\nimport %s", sum.RunID)
	if sum.DryRun {
		color.New(color.FgYellow).Fprint(w, " (dry run)")
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, kv := range [][2]string{
		{"lines", strconv.Itoa(sum.Lines)},
		{"imported", strconv.Itoa(sum.Imported)},
		{"duplicates", strconv.Itoa(sum.Duplicates)},
		{"test centers added", strconv.Itoa(sum.CentersAdded)},
		{"failed", strconv.Itoa(sum.Failed)},
		{"mirrored", strconv.Itoa(sum.Mirrored)},
		{"mirror errors", strconv.Itoa(sum.MirrorErrors)},
		{"elapsed", sum.Elapsed.String()},
	} {
		table.Append(kv[:])
	}
	table.Render()

	if len(sum.ByKind) > 0 {
		color.New(color.FgYellow).Fprintln(w, "\nfailures by kind")
		kinds := make([]string, 0, len(sum.ByKind))
		for k := range sum.ByKind {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)

		kt := tablewriter.NewWriter(w)
		kt.SetHeader([]string{"Kind", "Lines"})
		kt.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, k := range kinds {
			kt.Append([]string{k, strconv.Itoa(sum.ByKind[k])})
		}
		kt.Render()
	}

	if runErr != nil {
		wire := perr.WireFrom(runErr)
		msg := runErr.Error()
		if wire.Line != 0 {
			msg = fmt.Sprintf("line %d: %s", wire.Line, msg)
		}
		color.New(color.FgRed, color.Bold).Fprintf(w, "\nfailed: %s\n", msg)
		return
	}
	color.New(color.FgGreen, color.Bold).Fprintln(w, "\nok")
}
