package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tastehub/tastehub-go/cmd/tastehub/interactive"
	"github.com/tastehub/tastehub-go/pkg/cooktimer"
)

func newTimerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timer <recipe-id>",
		Short: "Run the cooking timer for a recipe",
		Long: `Open an interactive console with the recipe's cooking timer.

The timer starts in prep mode. Switch with 'prep', 'cook' or
'custom <minutes>', and start, pause or resume with 'toggle'.
Type 'help' in the console for all commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			r, err := c.Get(args[0])
			if err != nil {
				return err
			}

			events, closer, err := a.eventLogger()
			if err != nil {
				return err
			}
			defer closer.Close()

			opts := interactive.Options{
				// BEL is only useful on a terminal.
				Bell:   a.settings.Bell && term.IsTerminal(int(os.Stdout.Fd())),
				Logger: events,
				Period: a.settings.Tick,
			}
			if a.settings.Desktop {
				opts.Notifier = cooktimer.NewRetryNotifier(cooktimer.NewDesktopNotifier(""), 0, 0)
			}

			console, err := interactive.New(r, cmd.OutOrStdout(), opts)
			if err != nil {
				return err
			}
			defer console.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Debug("Timer session started",
				slog.String("recipe_id", r.ID),
				slog.String("session_id", console.Timer().SessionID()))

			return console.Run(ctx)
		},
	}
}
