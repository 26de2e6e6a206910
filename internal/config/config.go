// Package config loads tastehub settings from a YAML file, TASTEHUB_*
// environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, so log.level is
// read from TASTEHUB_LOG_LEVEL.
const EnvPrefix = "TASTEHUB"

// Setting keys.
const (
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
	KeyCatalogPath  = "catalog.path"
	KeyTimerBell    = "timer.bell"
	KeyTimerTick    = "timer.tick"
	KeyTimerDesktop = "timer.desktop"
)

// Config errors.
var (
	ErrInvalidLevel = errors.New("invalid log level")
	ErrInvalidTick  = errors.New("invalid tick period")
)

// Settings is the resolved configuration.
type Settings struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFile is the .tlog capture path. Empty disables capture.
	LogFile string

	// CatalogPath replaces the built-in recipe catalog when set.
	CatalogPath string

	// Bell rings the terminal bell on completion.
	Bell bool

	// Tick is the countdown period.
	Tick time.Duration

	// Desktop also shows completion as a desktop notification.
	Desktop bool

	// ConfigFile is the file that was read, if any.
	ConfigFile string
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyCatalogPath, "")
	v.SetDefault(KeyTimerBell, true)
	v.SetDefault(KeyTimerTick, time.Second)
	v.SetDefault(KeyTimerDesktop, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds the persistent flags of the CLI to their keys. Flags that
// are absent from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyLogLevel:     "log-level",
		KeyLogFile:      "log-file",
		KeyCatalogPath:  "catalog",
		KeyTimerBell:    "bell",
		KeyTimerDesktop: "desktop",
	}
	for key, name := range bindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file and returns validated settings. An explicit
// path must exist. Without one, the search paths are tried and a missing
// file is not an error.
func Load(v *viper.Viper, path string) (Settings, error) {
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		for _, dir := range SearchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := Settings{
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogFile:     v.GetString(KeyLogFile),
		CatalogPath: v.GetString(KeyCatalogPath),
		Bell:        v.GetBool(KeyTimerBell),
		Tick:        v.GetDuration(KeyTimerTick),
		Desktop:     v.GetBool(KeyTimerDesktop),
		ConfigFile:  v.ConfigFileUsed(),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// SearchPaths returns the directories searched for config.yaml, most
// specific first.
func SearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "tastehub"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".tastehub"))
	}
	return paths
}

// Validate checks the level and tick period.
func (s Settings) Validate() error {
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	if s.Tick <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTick, s.Tick)
	}
	return nil
}

// SlogLevel returns LogLevel as a slog.Level. Unknown levels map to Info.
func (s Settings) SlogLevel() slog.Level {
	l, err := ParseLevel(s.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}
