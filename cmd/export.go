package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the report history to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

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
			fmt.Println("No tests taken yet; nothing to export.")
			return nil
		}

		if err := export.WriteReports(history, out); err != nil {
			return err
		}
		fmt.Printf("Exported %d reports to %s\n", len(history), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "prepdeck-reports.xlsx", "Output file path")
}
