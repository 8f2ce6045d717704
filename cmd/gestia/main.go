// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

// gestia is the interactive back-office console for facility
// management operations: tickets, quotes, invoices, assets, providers,
// sites, managers, activity reports and the intervention planning.
//
// It connects to the back-office REST API configured in gestia.yaml
// (located via GESTIA_CONFIG or --config) and renders a full-screen
// terminal UI. All state except the bearer token and the local
// notification file lives server-side.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/gestia-ops/gestia/lib/api"
	"github.com/gestia-ops/gestia/lib/config"
	"github.com/gestia-ops/gestia/lib/opsui"
	"github.com/gestia-ops/gestia/lib/prefstore"
	"github.com/gestia-ops/gestia/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var apiURL string
	var tokenFile string
	var resource string
	var logOutput string

	flagSet := pflag.NewFlagSet("gestia", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to gestia.yaml (default: $GESTIA_CONFIG)")
	flagSet.StringVar(&apiURL, "api-url", "", "API base URL (overrides api.base_url)")
	flagSet.StringVar(&tokenFile, "token-file", "", "path to the bearer token file (overrides api.token_file)")
	flagSet.StringVar(&resource, "resource", "", "tab to open at startup (tickets, quotes, invoices, ...)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works regardless of
	// other flags.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println("gestia " + version.Full())
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("gestia requires an interactive terminal")
	}

	logger, closeLog, err := newLogger(logOutput)
	if err != nil {
		return err
	}
	defer closeLog()

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	initialTab := opsui.TabDashboard
	if resource != "" {
		tab, ok := opsui.TabByName(resource)
		if !ok {
			return fmt.Errorf("unknown resource %q", resource)
		}
		initialTab = tab
	}

	if tokenFile == "" {
		tokenFile = cfg.API.TokenFile
	}
	if tokenFile == "" {
		return fmt.Errorf("no token file: set api.token_file in the config or pass --token-file")
	}
	tokenData, err := os.ReadFile(tokenFile)
	if err != nil {
		return fmt.Errorf("reading token file: %w", err)
	}
	token := strings.TrimSpace(string(tokenData))
	if token == "" {
		return fmt.Errorf("token file %s is empty", tokenFile)
	}

	client, err := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   token,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	store, err := prefstore.File(cfg.UI.StateFile, logger)
	if err != nil {
		return fmt.Errorf("opening state file: %w", err)
	}

	keyMap, err := opsui.LoadKeyMap(cfg.UI.KeymapFile)
	if err != nil {
		return err
	}

	model, err := opsui.NewModel(opsui.Options{
		Client:     client,
		Store:      store,
		KeyMap:     keyMap,
		PageSize:   cfg.UI.PageSize,
		ExportDir:  cfg.UI.ExportDir,
		Logger:     logger,
		InitialTab: initialTab,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}

// newLogger builds the process logger. With --log-output, JSON records
// go to the named file; otherwise only warnings reach stderr, where
// they surface after the TUI exits.
func newLogger(logOutput string) (*slog.Logger, func(), error) {
	if logOutput == "" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		return slog.New(handler), func() {}, nil
	}
	file, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log output: %w", err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Gestia back-office console — interactive terminal UI for facility
management operations.

Configuration comes from a YAML file located via the GESTIA_CONFIG
environment variable or the --config flag. The bearer token is read
from the file named by api.token_file (or --token-file); it is never
stored in the config itself.

Usage:
  gestia [flags]

Flags:
%s
Keys (defaults, override via ui.keymap_file):
  ]/[        switch tab        0-9   jump to tab
  j/k        move cursor       n/p   next/previous page
  /          search            f     status filter
  a          row actions       Enter detail view
  r          refresh           e     export invoices (invoice tab)
  N          notifications     t     toggle dark/light theme
  q          quit
`, flagSet.FlagUsages())
}
