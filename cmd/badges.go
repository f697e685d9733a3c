package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/achievements"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned and available badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		prof, err := s.Profiles().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		earned := 0
		for _, b := range achievements.Catalog() {
			mark := " "
			if slices.Contains(prof.BadgeIDs, b.ID) {
				mark = "✓"
				earned++
			}
			fmt.Printf("[%s] %s %-16s %s\n", mark, b.Icon, b.Name, b.Description)
		}
		fmt.Printf("\n%d of %d earned\n", earned, len(achievements.Catalog()))
		return nil
	},
}
