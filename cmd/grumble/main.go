// Command grumble turns English text into gravelly constructed-language
// speech through a deterministic rewrite pipeline and local TTS tools.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gravelworks/grumble-cli/internal/adapters/driven/config/file"
	"github.com/gravelworks/grumble-cli/internal/adapters/driven/storage/sqlite"
	"github.com/gravelworks/grumble-cli/internal/adapters/driving/cli"
	"github.com/gravelworks/grumble-cli/internal/core/services"
	"github.com/gravelworks/grumble-cli/internal/effects/sox"
	"github.com/gravelworks/grumble-cli/internal/logger"
	"github.com/gravelworks/grumble-cli/internal/player"
	"github.com/gravelworks/grumble-cli/internal/rewrite"
	"github.com/gravelworks/grumble-cli/internal/synth"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The config-dir flag is parsed by cobra during Execute, but the
	// stores must exist before the command tree runs. Scan for it early.
	configDir := configDirFromArgs(os.Args[1:])

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	dataDir := ""
	if configDir != "" {
		dataDir = filepath.Join(configDir, "data")
	}
	historyStore, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer historyStore.Close()

	settingsService := services.NewSettingsService(configStore)
	historyService := services.NewHistoryService(historyStore)
	rewriter := rewrite.NewEngine()

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	speechService := services.NewSpeechService(
		rewriter,
		settingsService,
		synth.NewRegistry().Engines(),
		sox.New(),
		player.New(settings.PlayerCommand),
		historyStore,
	)

	// Reload settings when the config file changes on disk, so the REPL
	// and long-running servers pick up external edits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watcher, err := file.NewWatcher(configStore, func() {
		logger.Debug("Config file reloaded")
	}); err == nil {
		go watcher.Run(ctx)
		defer watcher.Close() //nolint:errcheck // Best-effort cleanup on exit
	} else {
		logger.Debug("Config watcher unavailable: %v", err)
	}

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Speech:   speechService,
		Settings: settingsService,
		History:  historyService,
		Rewriter: rewriter,
	})

	return cli.Execute()
}

// configDirFromArgs extracts the --config-dir value without running the
// full flag parse.
func configDirFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--config-dir" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, "--config-dir="); ok {
			return v
		}
	}
	return ""
}
