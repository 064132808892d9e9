// Copyright 2025 The cfprune Authors.
// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0
// that can be found in the LICENSE file and https://mozilla.org/MPL/2.0/.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cfprune/cfprune.go/core"
	"github.com/fatih/color"
)

func printPlan(w io.Writer, plan core.Plan, dryRun bool) {
	if dryRun {
		fmt.Fprintln(w, color.YellowString("Dry run: no records will be deleted."))
		fmt.Fprintln(w, "The following records would be deleted:")
	} else {
		fmt.Fprintln(w, "The following records will be deleted:")
	}
	fmt.Fprintf(w, "%-36s %-6s %-40s %s\n", "ID", "TYPE", "NAME", "CONTENT")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, record := range plan {
		fmt.Fprintf(w, "%-36s %-6s %-40s %s\n", record.ID, record.Type, record.Name, record.Content)
	}
}

func printSummary(w io.Writer, summary core.Summary, dryRun bool) {
	fmt.Fprintln(w)
	for _, outcome := range summary.Outcomes {
		switch outcome.Status {
		case core.StatusSuccess:
			fmt.Fprintf(w, "%s %s (%s)\n",
				color.GreenString("deleted"), outcome.Record.Name, outcome.Record.ID)
		case core.StatusFailed:
			fmt.Fprintf(w, "%s %s (%s): %s\n",
				color.RedString("failed"), outcome.Record.Name, outcome.Record.ID, outcome.Detail)
		case core.StatusSkipped:
			fmt.Fprintf(w, "%s %s (%s): %s\n",
				color.YellowString("skipped"), outcome.Record.Name, outcome.Record.ID, outcome.Detail)
		}
	}

	fmt.Fprintf(w, "\n%d records: %s, %s, %s\n",
		summary.Attempted,
		color.GreenString("%d deleted", summary.Succeeded),
		color.RedString("%d failed", summary.Failed),
		color.YellowString("%d skipped", summary.Skipped))
	if dryRun {
		fmt.Fprintln(w, color.YellowString("Dry run: the zone was not modified."))
	}
}

// promptConfirmer asks the operator once whether to proceed. Anything other
// than an explicit yes declines.
func promptConfirmer(in io.Reader, out io.Writer) core.Confirmer {
	return func() bool {
		fmt.Fprint(out, "Proceed with deletion? [y/N]: ")
		scanner := bufio.NewScanner(in)
		if !scanner.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		return answer == "y" || answer == "yes"
	}
}
