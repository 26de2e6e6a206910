// Command tastehub browses the biriyani recipe catalog and runs the
// interactive cooking timer from a terminal.
//
// Usage:
//
//	tastehub <command> [flags]
//
// Commands:
//
//	recipes list      List recipes, optionally filtered
//	recipes show      Show one recipe in full
//	recipes featured  Pick random recipes to feature
//	timer             Run the cooking timer for a recipe
//	log view          View a timer event log
//	log stats         Show statistics about a timer event log
//	log export        Export a timer event log to JSONL or CSV
//	version           Print version information
//
// Examples:
//
//	# Kerala recipes that are easy to make
//	tastehub recipes list --region Kerala --difficulty easy
//
//	# Cook Malabar biriyani and capture timer events
//	tastehub timer malabar --log-file malabar.tlog
//
//	# Look at what happened, skipping per-second ticks
//	tastehub log view --no-ticks malabar.tlog
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
