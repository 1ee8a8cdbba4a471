package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soradev/custom-cmd/internal/app"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "CUSTOM_CMD_"

const (
	envDataDir    = envPrefix + "DATA_DIR"
	envShell      = envPrefix + "SHELL"
	envWidth      = envPrefix + "WIDTH"
	envHeight     = envPrefix + "HEIGHT"
	envShowFooter = envPrefix + "FOOTER"
	envWatch      = envPrefix + "WATCH"
	envTrace      = envPrefix + "TRACE"
	envLogFile    = envPrefix + "LOG_FILE"
)

const (
	DefaultDataDir = "bin"
	DefaultLogFile = "custom-cmd.log"
)

// Binding holds flag values registered on a flag set. It lets the cobra
// command tree and LoadArgs share one definition of every option.
type Binding struct {
	fs         *pflag.FlagSet
	dataDir    *string
	shell      *string
	width      *int
	height     *int
	showFooter *bool
	watch      *bool
	trace      *bool
	logFile    *string
}

// Bind registers the application flags on fs, taking defaults from the
// environment.
func Bind(fs *pflag.FlagSet, environ []string) *Binding {
	env := parseEnv(environ)
	return &Binding{
		fs:         fs,
		dataDir:    fs.String("data-dir", envOrDefault(env, envDataDir, DefaultDataDir), "directory holding style.json, the command catalogs and backgrounds"),
		shell:      fs.String("shell", envOrDefault(env, envShell, ""), "shell used to run commands (default: platform shell)"),
		width:      fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:     fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		showFooter: fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint row"),
		watch:      fs.Bool("watch", envOrBool(env, envWatch, true), "reload style.json when it changes on disk"),
		trace:      fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:    fs.String("log-file", envOrDefault(env, envLogFile, DefaultLogFile), "path to the log file"),
	}
}

// Config assembles the parsed values. args are the raw command-line
// arguments, recorded for startup tracing.
func (b *Binding) Config(args []string) Config {
	return Config{
		App: app.Config{
			DataDir:    *b.dataDir,
			Shell:      *b.shell,
			Width:      *b.width,
			Height:     *b.height,
			ShowFooter: *b.showFooter,
			Watch:      *b.watch,
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Trace:    *b.trace,
		},
		Flags: map[string]string{
			"dataDir": *b.dataDir,
			"shell":   *b.shell,
			"width":   strconv.Itoa(*b.width),
			"height":  strconv.Itoa(*b.height),
			"footer":  strconv.FormatBool(*b.showFooter),
			"watch":   strconv.FormatBool(*b.watch),
			"trace":   strconv.FormatBool(*b.trace),
			"logFile": *b.logFile,
		},
		Args: append([]string(nil), args...),
	}
}

// LoadArgs parses args on a standalone flag set with environ supplying the
// defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("custom-cmd", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	binding := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := binding.Config(args)
	if err := Validate(cfg); err != nil {
		return Config{}, err
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

// Validate rejects option combinations the program cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if strings.TrimSpace(cfg.App.DataDir) == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	return nil
}
