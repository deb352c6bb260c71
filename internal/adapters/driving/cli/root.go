// Package cli implements the cobra command tree. Commands talk to the
// core through the driving ports; wiring happens in main via
// SetServices before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
	"github.com/gravelworks/grumble-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	speechService   driving.SpeechService
	settingsService driving.SettingsService
	historyService  driving.HistoryService
	rewriteEngine   driving.Rewriter
)

// verbose enables step-by-step timing and diagnostic output.
var verbose bool

// configDir overrides the default ~/.grumble configuration directory.
// It is read by main before command dispatch, so wiring can happen
// ahead of Execute; the flag is declared here so cobra documents it.
var configDir string

var rootCmd = &cobra.Command{
	Use:   "grumble",
	Short: "Turn English into gravelly constructed-language speech",
	Long: `Grumble rewrites English into a guttural constructed language and
speaks it through a local TTS engine with a deep, gritty voice character.

The rewrite is deterministic: the same text with the same seed always
produces the same output. Quoted text and configured literal phrases
survive the rewrite verbatim.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Show timing information for each step")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"Configuration directory (default ~/.grumble)")
}

// Services bundles everything the command tree needs.
type Services struct {
	Speech   driving.SpeechService
	Settings driving.SettingsService
	History  driving.HistoryService
	Rewriter driving.Rewriter
}

// SetServices injects the core services. Call before Execute.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	speechService = s.Speech
	settingsService = s.Settings
	historyService = s.History
	rewriteEngine = s.Rewriter
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
