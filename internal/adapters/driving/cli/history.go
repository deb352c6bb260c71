package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage utterance history",
	Long: `View and clear the utterance history. The most recent ` +
		fmt.Sprint(domain.HistoryCap) + ` rewrites are kept.`,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent utterances",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all history",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", domain.HistoryCap,
		"Maximum number of utterances to show")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	utterances, err := historyService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(utterances) == 0 {
		cmd.Println("No history.")
		return nil
	}

	for _, u := range utterances {
		cmd.Printf("%s  seed=%d\n", u.CreatedAt.Local().Format("2006-01-02 15:04:05"), u.Seed)
		cmd.Printf("  in:  %s\n", u.Input)
		cmd.Printf("  out: %s\n", u.Output)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}
