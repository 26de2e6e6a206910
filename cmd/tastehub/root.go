package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tastehub/tastehub-go/internal/config"
	"github.com/tastehub/tastehub-go/pkg/log"
	"github.com/tastehub/tastehub-go/pkg/recipe"
	"github.com/tastehub/tastehub-go/pkg/version"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings config.Settings
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "tastehub",
		Short: "tastehub - biriyani recipes and a cooking timer",
		Long: `Browse a catalog of regional biriyani recipes and cook along with an
interactive prep/cook timer. Timer sessions can be captured to a .tlog file
and inspected later with the log commands.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Config file (default: ./config.yaml, $XDG_CONFIG_HOME/tastehub/config.yaml)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Capture timer events to this .tlog file")
	pf.String("catalog", "", "Recipe catalog YAML (default: built-in catalog)")
	pf.Bool("bell", true, "Ring the terminal bell when a timer finishes")
	pf.Bool("desktop", false, "Also show a desktop notification (notify-send) when a timer finishes")

	root.AddCommand(
		newRecipesCmd(a),
		newTimerCmd(a),
		newLogCmd(),
		newVersionCmd(),
	)

	return root
}

// setup resolves configuration and installs the process logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	settings, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.settings = settings

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: settings.SlogLevel(),
	}))
	slog.SetDefault(a.logger)

	if settings.ConfigFile != "" {
		a.logger.Debug("Loaded config", slog.String("path", settings.ConfigFile))
	}
	return nil
}

// catalog returns the configured recipe catalog.
func (a *app) catalog() (*recipe.Catalog, error) {
	if a.settings.CatalogPath == "" {
		return recipe.Builtin(), nil
	}
	c, err := recipe.Load(a.settings.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	a.logger.Debug("Loaded catalog",
		slog.String("path", a.settings.CatalogPath),
		slog.Int("recipes", c.Len()))
	return c, nil
}

// eventLogger returns the timer event sink: a .tlog file when capture is
// enabled, plus structured logs at debug level. The returned closer must be
// called.
func (a *app) eventLogger() (log.Logger, io.Closer, error) {
	var sinks []log.Logger
	if a.settings.SlogLevel() <= slog.LevelDebug {
		sinks = append(sinks, log.NewSlogAdapter(a.logger))
	}

	if a.settings.LogFile == "" {
		return log.NewMultiLogger(sinks...), nopCloser{}, nil
	}

	fl, err := log.NewFileLogger(a.settings.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create event log: %w", err)
	}
	a.logger.Info("Capturing timer events", slog.String("path", a.settings.LogFile))
	return log.NewMultiLogger(append(sinks, fl)...), fl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tastehub %s (catalog format %s)\n", version.Release, version.CatalogFormat)
		},
	}
}
