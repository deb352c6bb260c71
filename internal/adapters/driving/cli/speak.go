package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

var (
	speakSeed      int64
	speakEngine    string
	speakVoice     string
	speakSemitones int
	speakGritDrive int
	speakGritColor int
	speakGritMode  string
	speakChorusMS  int
	speakTempo     float64
	speakDryRun    bool
	speakOut       string
	speakPlay      bool
	speakKeepStops bool
	speakStripNth  int
	speakLiteral   []string
)

var speakCmd = &cobra.Command{
	Use:   "speak [text...]",
	Short: "Rewrite text and speak it",
	Long: `Rewrite English text into the constructed language and render it
through the configured TTS engine and effects chain.

Text is taken from the arguments, or from stdin when no arguments are
given and stdin is not a terminal. Flags override the persisted
settings for this run only.

Examples:
  grumble speak bring me the plans
  echo "bring me the plans" | grumble speak --play
  grumble speak --seed 7 --tempo 1.1 --out plans.wav bring me the plans`,
	RunE: runSpeak,
}

func init() {
	speakCmd.Flags().Int64Var(&speakSeed, "seed", 0, "Deterministic rewrite seed")
	speakCmd.Flags().StringVar(&speakEngine, "engine", "", "Synthesis engine (espeak, say)")
	speakCmd.Flags().StringVar(&speakVoice, "voice", "", "Engine-specific voice name")
	speakCmd.Flags().IntVar(&speakSemitones, "semitones", 0, "Pitch shift in semitones (formant-preserved)")
	speakCmd.Flags().IntVar(&speakGritDrive, "grit-drive", 0, "Grit intensity (0=none, 1-10)")
	speakCmd.Flags().IntVar(&speakGritColor, "grit-color", 0, "Grit colour/tone")
	speakCmd.Flags().StringVar(&speakGritMode, "grit-mode", "", "Grit mode (overdrive, compression, eq, combo)")
	speakCmd.Flags().IntVar(&speakChorusMS, "chorus-ms", 0, "Chorus delay in milliseconds")
	speakCmd.Flags().Float64Var(&speakTempo, "tempo", 0, "Speed multiplier (1.0=normal)")
	speakCmd.Flags().BoolVar(&speakDryRun, "dry-run", false, "Only print the rewritten text")
	speakCmd.Flags().StringVarP(&speakOut, "out", "o", "", "Keep the rendered WAV at this path")
	speakCmd.Flags().BoolVarP(&speakPlay, "play", "p", false, "Play the result after rendering")
	speakCmd.Flags().BoolVar(&speakKeepStops, "keep-stop-words", false, "Disable stop word removal")
	speakCmd.Flags().IntVar(&speakStripNth, "strip-every-nth", 0, "Strip every Nth word (0=disabled)")
	speakCmd.Flags().StringSliceVar(&speakLiteral, "literal", nil, "Phrase to keep verbatim (repeatable)")
	rootCmd.AddCommand(speakCmd)
}

func runSpeak(cmd *cobra.Command, args []string) error {
	if speechService == nil || settingsService == nil {
		return errors.New("speech service not configured")
	}

	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := applySpeakFlags(cmd, settings); err != nil {
		return err
	}

	if speakDryRun {
		if rewriteEngine == nil {
			return errors.New("rewrite engine not configured")
		}
		out := rewriteEngine.Rewrite(text, settings.Rewrite)
		cmd.Println(out)
		if historyService != nil {
			// Best-effort record; a broken history store should not fail
			// a dry run.
			_ = historyService.Record(cmd.Context(), text, out, settings.Rewrite.Seed)
		}
		return nil
	}

	opts := driving.SpeakOptions{
		OutPath:  speakOut,
		Play:     speakPlay,
		Settings: settings,
	}

	result, err := speechService.Speak(cmd.Context(), text, opts)
	if err != nil {
		return err
	}

	cmd.Println(result.Rewritten)
	if result.OutPath != "" {
		cmd.Printf("Wrote %s\n", result.OutPath)
	}
	return nil
}

// inputText joins the args, falling back to stdin when no args were
// given and stdin is a pipe.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("%w: pass text as arguments or pipe it to stdin", domain.ErrNoInput)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", domain.ErrNoInput
	}
	return text, nil
}

// applySpeakFlags overlays explicitly-set flags onto the persisted
// settings for this run.
func applySpeakFlags(cmd *cobra.Command, settings *domain.AppSettings) error {
	flags := cmd.Flags()

	if flags.Changed("seed") {
		settings.Rewrite.Seed = speakSeed
	}
	if flags.Changed("engine") {
		settings.Engine = speakEngine
	}
	if flags.Changed("voice") {
		settings.Voice = speakVoice
	}
	if flags.Changed("keep-stop-words") {
		settings.Rewrite.StripStopWords = !speakKeepStops
	}
	if flags.Changed("strip-every-nth") {
		if speakStripNth < 0 {
			return fmt.Errorf("%w: strip-every-nth must be >= 0", domain.ErrInvalidInput)
		}
		settings.Rewrite.StripEveryNth = speakStripNth
	}
	if flags.Changed("literal") {
		settings.Rewrite.LiteralPhrases = speakLiteral
	}
	if flags.Changed("semitones") {
		settings.Effects.Semitones = speakSemitones
	}
	if flags.Changed("grit-drive") {
		if speakGritDrive < 0 || speakGritDrive > 10 {
			return fmt.Errorf("%w: grit-drive must be 0-10", domain.ErrInvalidInput)
		}
		settings.Effects.GritDrive = speakGritDrive
	}
	if flags.Changed("grit-color") {
		settings.Effects.GritColor = speakGritColor
	}
	if flags.Changed("grit-mode") {
		mode := domain.GritMode(speakGritMode)
		if !mode.IsValid() {
			return fmt.Errorf("%w: unknown grit mode %q", domain.ErrInvalidInput, speakGritMode)
		}
		settings.Effects.GritMode = mode
	}
	if flags.Changed("chorus-ms") {
		if speakChorusMS < 0 {
			return fmt.Errorf("%w: chorus-ms must be >= 0", domain.ErrInvalidInput)
		}
		settings.Effects.ChorusMS = speakChorusMS
	}
	if flags.Changed("tempo") {
		if speakTempo <= 0 {
			return fmt.Errorf("%w: tempo must be > 0", domain.ErrInvalidInput)
		}
		settings.Effects.Tempo = speakTempo
	}
	return nil
}
