package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/goals"
	"github.com/prepdeck/prepdeck/internal/progress"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage study goals",
}

var goalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals and their progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()

		// Refresh derived state so the listing reflects the current window.
		orch := progress.New(s.Reports(), s.Goals(), s.Profiles())
		if _, err := orch.Reevaluate(ctx); err != nil {
			return err
		}

		all, err := s.Goals().All(ctx)
		if err != nil {
			return fmt.Errorf("load goals: %w", err)
		}
		if len(all) == 0 {
			fmt.Println("No goals yet. Create one with: prepdeck goals add")
			return nil
		}

		fmt.Printf("%-36s  %-11s  %-10s  %-7s  %-9s  %s\n",
			"ID", "Type", "Subject", "Window", "Progress", "Status")
		fmt.Println(strings.Repeat("─", 100))
		for _, g := range all {
			subject := g.Subject
			if subject == "" {
				subject = goals.SubjectAll
			}
			fmt.Printf("%-36s  %-11s  %-10s  %-7s  %4.1f/%-4.1f  %s\n",
				g.ID, g.Type, subject, g.Timeframe, g.CurrentValue, g.TargetValue, g.Status)
			if g.Description != "" {
				fmt.Printf("    %s\n", g.Description)
			}
		}
		return nil
	},
}

var goalsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		goalType, _ := cmd.Flags().GetString("type")
		subject, _ := cmd.Flags().GetString("subject")
		target, _ := cmd.Flags().GetFloat64("target")
		timeframe, _ := cmd.Flags().GetString("timeframe")

		g := goals.Goal{
			ID:          uuid.NewString(),
			Description: description,
			Type:        goals.GoalType(goalType),
			Subject:     subject,
			TargetValue: target,
			Timeframe:   goals.Timeframe(timeframe),
			StartDate:   time.Now(),
			Status:      goals.StatusActive,
		}
		if err := validateGoal(g); err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		if err := s.Goals().Save(ctx, g); err != nil {
			return fmt.Errorf("save goal: %w", err)
		}

		// Seed CurrentValue from existing history right away.
		orch := progress.New(s.Reports(), s.Goals(), s.Profiles())
		if _, err := orch.Reevaluate(ctx); err != nil {
			return err
		}

		fmt.Printf("Goal created: %s\n", g.ID)
		return nil
	},
}

var goalsDeleteCmd = &cobra.Command{
	Use:   "delete <goal-id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.Goals().Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete goal: %w", err)
		}
		fmt.Println("Goal deleted.")
		return nil
	},
}

func validateGoal(g goals.Goal) error {
	switch g.Type {
	case goals.TypeCompletion, goals.TypeImprovement:
	default:
		return fmt.Errorf("invalid goal type %q (want completion or improvement)", g.Type)
	}
	switch g.Timeframe {
	case goals.TimeframeWeek, goals.TimeframeMonth:
	default:
		return fmt.Errorf("invalid timeframe %q (want week or month)", g.Timeframe)
	}
	if g.TargetValue <= 0 {
		return fmt.Errorf("target must be positive, got %g", g.TargetValue)
	}
	return nil
}

func init() {
	goalsAddCmd.Flags().StringP("description", "d", "", "Human-readable goal description")
	goalsAddCmd.Flags().StringP("type", "t", "completion", "Goal type: completion or improvement")
	goalsAddCmd.Flags().StringP("subject", "s", "", "Subject filter (empty or \"all\" matches everything)")
	goalsAddCmd.Flags().Float64("target", 1, "Target value: test count (completion) or score-point gain (improvement)")
	goalsAddCmd.Flags().String("timeframe", "week", "Measurement window: week or month")

	goalsCmd.AddCommand(goalsListCmd)
	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsDeleteCmd)
}
