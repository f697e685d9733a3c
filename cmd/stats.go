package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show test history and summary statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		history, err := s.Reports().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load report history: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("No tests taken yet.")
			return nil
		}

		var scoreSum float64
		for _, r := range history {
			scoreSum += r.Score
		}
		fmt.Printf("Tests taken:   %d\n", len(history))
		fmt.Printf("Average score: %.1f%%\n", scoreSum/float64(len(history)))
		fmt.Println()

		fmt.Printf("%-36s  %-16s  %-10s  %-12s  %6s  %7s\n",
			"ID", "Date", "Subject", "Chapter", "Score", "Correct")
		fmt.Println(strings.Repeat("─", 100))

		// Newest first, optionally limited.
		shown := 0
		for i := len(history) - 1; i >= 0; i-- {
			if limit > 0 && shown >= limit {
				break
			}
			r := history[i]
			fmt.Printf("%-36s  %-16s  %-10s  %-12s  %5.1f%%  %3d/%-3d\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				truncate(r.Subject, 10),
				truncate(r.Topic, 12),
				r.Score,
				r.CorrectCount,
				r.TotalQuestions,
			)
			shown++
		}
		return nil
	},
}

var statsDeleteCmd = &cobra.Command{
	Use:   "delete <report-id>",
	Short: "Delete a report and re-evaluate goals",
	Long: `Delete removes one report from the history. Goal progress is recomputed
against the remaining reports; badges already earned are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		orch := progress.New(s.Reports(), s.Goals(), s.Profiles())
		if err := orch.DeleteReport(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Report deleted; progress re-evaluated.")
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of reports to show (0 = all)")
	statsCmd.AddCommand(statsDeleteCmd)
}
