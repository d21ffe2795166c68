package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/McClunatic/modbus-d3/internal/config"
	"github.com/McClunatic/modbus-d3/internal/poller"
	"github.com/McClunatic/modbus-d3/internal/source"
	"github.com/McClunatic/modbus-d3/internal/ui"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	baseURL := flag.String("url", "", "Feed base URL (overrides config)")
	interval := flag.Duration("interval", 0, "Poll interval (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *baseURL != "" {
		cfg.Feed.BaseURL = *baseURL
	}
	if *interval > 0 {
		cfg.Feed.PollInterval = config.Duration(*interval)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "modbus-d3 needs a terminal")
		os.Exit(1)
	}

	// Redirect log output to a file so it doesn't interfere with TUI
	logFile, err := os.CreateTemp("", "modbus-d3-*.log")
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	client, err := source.NewClient(cfg.Feed.BaseURL, cfg.Feed.FetchTimeout.Std())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	p := poller.New(client, cfg.Feed.PollInterval.Std(), cfg.Feed.FetchTimeout.Std())
	defer p.Close()

	model := ui.New(p, client,
		cfg.Feed.WindowLen, cfg.Feed.PollInterval.Std(),
		*cfg.Chart.YMin, *cfg.Chart.YMax,
		cfg.Chart.XLabel, cfg.Chart.YLabel)

	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
