package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the synthesis engine, rewrite behaviour and
effects chain. Settings persist in ~/.grumble/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one setting by key",
	Long: `Set a single setting by its dot-notation key.

Available keys:
  synth.engine              Synthesis engine (espeak, say)
  synth.voice               Engine-specific voice name
  rewrite.seed              Deterministic rewrite seed
  rewrite.strip_stop_words  Remove common words (true/false)
  rewrite.strip_every_nth   Strip every Nth word (0=disabled)
  rewrite.literal_phrases   Comma-separated phrases kept verbatim
  effects.semitones         Pitch shift in semitones
  effects.grit_drive        Grit intensity (0-10)
  effects.grit_color        Grit colour/tone
  effects.grit_mode         overdrive, compression, eq or combo
  effects.chorus_ms         Chorus delay in milliseconds
  effects.tempo             Speed multiplier
  player.command            Playback binary override`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Synthesis]")
	cmd.Printf("  Engine: %s\n", settings.Engine)
	if settings.Voice != "" {
		cmd.Printf("  Voice: %s\n", settings.Voice)
	} else {
		cmd.Printf("  Voice: (engine default)\n")
	}
	cmd.Println()

	cmd.Println("[Rewrite]")
	cmd.Printf("  Seed: %d\n", settings.Rewrite.Seed)
	cmd.Printf("  Strip stop words: %t\n", settings.Rewrite.StripStopWords)
	cmd.Printf("  Strip every Nth: %d\n", settings.Rewrite.StripEveryNth)
	if len(settings.Rewrite.LiteralPhrases) > 0 {
		cmd.Printf("  Literal phrases: %s\n", strings.Join(settings.Rewrite.LiteralPhrases, ", "))
	}
	cmd.Println()

	cmd.Println("[Effects]")
	cmd.Printf("  Semitones: %d\n", settings.Effects.Semitones)
	cmd.Printf("  Grit: %s\n", settings.Effects.GritMode.Description())
	cmd.Printf("  Grit drive: %d\n", settings.Effects.GritDrive)
	cmd.Printf("  Grit colour: %d\n", settings.Effects.GritColor)
	cmd.Printf("  Chorus: %dms\n", settings.Effects.ChorusMS)
	cmd.Printf("  Tempo: %g\n", settings.Effects.Tempo)
	cmd.Println()

	cmd.Println("[Player]")
	if settings.PlayerCommand != "" {
		cmd.Printf("  Command: %s\n", settings.PlayerCommand)
	} else {
		cmd.Printf("  Command: (autodetect)\n")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
