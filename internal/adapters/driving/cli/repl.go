package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravelworks/grumble-cli/internal/adapters/driving/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Type a sentence and press Enter to rewrite and speak it. Lines starting
with a keyword adjust the session:

  seed N         Set the rewrite seed
  tempo X        Set the speed multiplier
  engine NAME    Switch synthesis engine (espeak, say)
  voice NAME     Set the engine voice
  verbose on|off Toggle step timing output
  help           Show the command list
  quit           Exit`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps the stack trace visible once bubbletea has
	// restored the terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in REPL: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Speech:   speechService,
		Settings: settingsService,
		History:  historyService,
		Rewriter: rewriteEngine,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create REPL: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("REPL error: %w", err)
	}
	return nil
}
