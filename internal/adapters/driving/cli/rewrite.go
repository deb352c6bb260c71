package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

var (
	rewriteSeed      int64
	rewriteKeepStops bool
	rewriteStripNth  int
	rewriteLiteral   []string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [text...]",
	Short: "Print the rewritten text without speaking",
	Long: `Rewrite English text into the constructed language and print the
result. Nothing is synthesized and nothing is recorded in history.`,
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().Int64Var(&rewriteSeed, "seed", 0, "Deterministic rewrite seed")
	rewriteCmd.Flags().BoolVar(&rewriteKeepStops, "keep-stop-words", false, "Disable stop word removal")
	rewriteCmd.Flags().IntVar(&rewriteStripNth, "strip-every-nth", 0, "Strip every Nth word (0=disabled)")
	rewriteCmd.Flags().StringSliceVar(&rewriteLiteral, "literal", nil, "Phrase to keep verbatim (repeatable)")
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	if rewriteEngine == nil || settingsService == nil {
		return errors.New("rewrite engine not configured")
	}

	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cfg := settings.Rewrite
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = rewriteSeed
	}
	if flags.Changed("keep-stop-words") {
		cfg.StripStopWords = !rewriteKeepStops
	}
	if flags.Changed("strip-every-nth") {
		if rewriteStripNth < 0 {
			return fmt.Errorf("%w: strip-every-nth must be >= 0", domain.ErrInvalidInput)
		}
		cfg.StripEveryNth = rewriteStripNth
	}
	if flags.Changed("literal") {
		cfg.LiteralPhrases = rewriteLiteral
	}

	cmd.Println(rewriteEngine.Rewrite(text, cfg))
	return nil
}
