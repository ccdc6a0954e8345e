package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/atomicstack/rightclick/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envWidth      = "RIGHTCLICK_WIDTH"
	envHeight     = "RIGHTCLICK_HEIGHT"
	envShowFooter = "RIGHTCLICK_FOOTER"
	envVerbose    = "RIGHTCLICK_VERBOSE"
	envTrace      = "RIGHTCLICK_TRACE"
	envLogFile    = "RIGHTCLICK_LOG_FILE"
	envHTTPAddr   = "RIGHTCLICK_HTTP"
	envHeadless   = "RIGHTCLICK_HEADLESS"
	envNoBrowser  = "RIGHTCLICK_NO_BROWSER"
	envRootMenu   = "RIGHTCLICK_ROOT"
	envFile       = "RIGHTCLICK_ENV_FILE"

	defaultEnvFile = ".env"
)

// ErrHeadlessWithoutHTTP is returned by Validate when nothing would be served.
var ErrHeadlessWithoutHTTP = errors.New("headless mode requires an http listen address")

// Load parses configuration from CLI arguments, environment variables and
// the optional .env file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	if err := mergeEnvFile(env); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("rightclick", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for clicks")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	httpAddr := fs.String("http", envOrDefault(env, envHTTPAddr, ""), "listen address for the HTTP menu bar (empty disables it)")
	headless := fs.Bool("headless", envOrBool(env, envHeadless, false), "serve only the HTTP menu bar, without the terminal menu")
	noBrowser := fs.Bool("no-browser", envOrBool(env, envNoBrowser, false), "discard links instead of opening a browser")
	root := fs.String("root", envOrDefault(env, envRootMenu, ""), "start inside the top-level menu with this title")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			RootMenu:   strings.TrimSpace(*root),
			HTTPAddr:   strings.TrimSpace(*httpAddr),
			Headless:   *headless,
			NoBrowser:  *noBrowser,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
			"http":      *httpAddr,
			"headless":  strconv.FormatBool(*headless),
			"noBrowser": strconv.FormatBool(*noBrowser),
			"root":      *root,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// mergeEnvFile fills env with values from the .env file. Variables already
// present in the real environment are left alone. A missing default file is
// not an error; a missing file named explicitly is.
func mergeEnvFile(env map[string]string) error {
	path, explicit := env[envFile]
	if strings.TrimSpace(path) == "" {
		path, explicit = defaultEnvFile, false
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read env file %s: %w", path, err)
	}
	for key, value := range values {
		if _, ok := env[key]; !ok {
			env[key] = value
		}
	}
	return nil
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
	if cfg.App.Headless && cfg.App.HTTPAddr == "" {
		return ErrHeadlessWithoutHTTP
	}
	return nil
}
