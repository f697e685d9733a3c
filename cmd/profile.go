package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/exam"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the learner profile",
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

		fmt.Printf("Name:          %s\n", prof.Name)
		fmt.Printf("Detail level:  %s\n", prof.DetailLevel)
		fmt.Printf("Badges earned: %d\n", len(prof.BadgeIDs))
		return nil
	},
}

var profileDetailCmd = &cobra.Command{
	Use:   "detail <full|summary>",
	Short: "Set the feedback detail level for graded tests",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var level exam.DetailLevel
		switch strings.ToLower(args[0]) {
		case "full":
			level = exam.DetailFull
		case "summary":
			level = exam.DetailSummary
		default:
			return fmt.Errorf("invalid detail level %q (want full or summary)", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.Profiles().SetDetailLevel(cmd.Context(), level); err != nil {
			return fmt.Errorf("set detail level: %w", err)
		}
		fmt.Printf("Detail level set to %s.\n", level)
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileDetailCmd)
}
