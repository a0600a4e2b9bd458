package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Clete2/zfs-space-visualizer/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Command string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envReadOnly = "ZFS_VISUALIZER_READONLY"
	envThreads  = "ZFS_VISUALIZER_THREADS"
	envTheme    = "ZFS_VISUALIZER_THEME"
	envTrace    = "ZFS_VISUALIZER_TRACE"
	envLogFile  = "ZFS_VISUALIZER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("zfs-space-visualizer", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	readonly := fs.Bool("readonly", envOrBool(env, envReadOnly, false), "disable snapshot deletion")
	threads := fs.Int("threads", envOrInt(env, envThreads, 0), "snapshot prefetch workers (0 picks 8 per CPU)")
	themeName := fs.String("theme", envOrDefault(env, envTheme, "dark"), "color theme (dark or light)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	command := ""
	if rest := fs.Args(); len(rest) > 0 {
		command = rest[0]
	}

	cfg := Config{
		App: app.Config{
			ReadOnly: *readonly,
			Threads:  *threads,
			Theme:    *themeName,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Command: command,
		Flags: map[string]string{
			"readonly": strconv.FormatBool(*readonly),
			"threads":  strconv.Itoa(*threads),
			"theme":    *themeName,
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Threads < 0 || cfg.App.Threads > 1000 {
		return fmt.Errorf("threads must be between 0 and 1000 (got %d)", cfg.App.Threads)
	}
	switch cfg.Command {
	case "", "update":
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
	return nil
}
