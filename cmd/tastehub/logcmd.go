package main

import (
	"github.com/spf13/cobra"

	"github.com/tastehub/tastehub-go/cmd/tastehub/commands"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect captured timer event logs (.tlog)",
	}
	cmd.AddCommand(newLogViewCmd(), newLogStatsCmd(), newLogExportCmd())
	return cmd
}

func newLogViewCmd() *cobra.Command {
	var filter commands.ViewFilter
	var kind string

	cmd := &cobra.Command{
		Use:   "view <file.tlog>",
		Short: "View a timer event log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "" {
				k, err := commands.ParseKindFlag(kind)
				if err != nil {
					return err
				}
				filter.Kind = &k
			}
			return commands.RunView(args[0], filter, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&filter.SessionID, "session", "", "Filter by session ID")
	cmd.Flags().StringVar(&filter.Label, "label", "", "Filter by recipe ID")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by event kind (start, pause, tick, complete, ...)")
	cmd.Flags().BoolVar(&filter.SkipTicks, "no-ticks", false, "Hide per-second tick events")
	return cmd
}

func newLogStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.tlog>",
		Short: "Show statistics about a timer event log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunStats(args[0], cmd.OutOrStdout())
		},
	}
}

func newLogExportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export <file.tlog>",
		Short: "Export a timer event log to JSONL or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunExport(args[0], format, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&format, "format", "jsonl", "Output format (jsonl, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

