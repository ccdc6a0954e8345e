package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/atomicstack/rightclick/internal/app"
	"github.com/atomicstack/rightclick/internal/config"
	"github.com/atomicstack/rightclick/internal/logging"
	"github.com/atomicstack/rightclick/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// startupTracePayload bundles the resolved configuration and the terminal
// the popup will draw on.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = logging.Path()
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    probeTerminal(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalInfo struct {
	Size   *terminalSize `json:"size,omitempty"`
	Probes []fdProbe     `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type fdProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal checks the standard descriptors. The first terminal that
// reports a size wins; headless runs usually have none.
func probeTerminal() terminalInfo {
	var info terminalInfo
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		probe := fdProbe{Name: descriptorName(f)}
		fd := int(f.Fd())
		probe.IsTerminal = term.IsTerminal(fd)
		if probe.IsTerminal {
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				probe.Error = err.Error()
			case info.Size == nil:
				info.Size = &terminalSize{Source: probe.Name, Width: width, Height: height}
			}
		}
		info.Probes = append(info.Probes, probe)
	}
	return info
}

func descriptorName(f *os.File) string {
	switch f {
	case os.Stdin:
		return "stdin"
	case os.Stdout:
		return "stdout"
	default:
		return "stderr"
	}
}
