package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/model"
)

var flagSprintAll bool

var sprintsCmd = &cobra.Command{
	Use:   "sprints",
	Short: "List savings sprints with progress",
	RunE:  runSprints,
}

var (
	flagAddSprintDescription string
	flagAddSprintCategory    string
	flagAddSprintStart       string
	flagAddSprintEnd         string
)

var sprintsAddCmd = &cobra.Command{
	Use:   "add TITLE GOAL",
	Short: "Start a savings sprint",
	Args:  cobra.ExactArgs(2),
	RunE:  runSprintsAdd,
}

var sprintsAdvanceCmd = &cobra.Command{
	Use:   "advance SPRINT AMOUNT",
	Short: "Add saved money to a sprint (by id prefix or exact title)",
	Args:  cobra.ExactArgs(2),
	RunE:  runSprintsAdvance,
}

var (
	flagMilestoneReward string
)

var sprintsMilestoneCmd = &cobra.Command{
	Use:   "milestone SPRINT TITLE TARGET",
	Short: "Add an intermediate target to a sprint",
	Args:  cobra.ExactArgs(3),
	RunE:  runSprintsMilestone,
}

func init() {
	sprintsCmd.Flags().BoolVarP(&flagSprintAll, "all", "a", false, "Include inactive and finished sprints")

	sprintsAddCmd.Flags().StringVar(&flagAddSprintDescription, "description", "", "What this sprint is for")
	sprintsAddCmd.Flags().StringVarP(&flagAddSprintCategory, "category", "c", string(model.SprintSaving), "Category label")
	sprintsAddCmd.Flags().StringVar(&flagAddSprintStart, "start", "", "Start date (YYYY-MM-DD, default today)")
	sprintsAddCmd.Flags().StringVar(&flagAddSprintEnd, "end", "", "End date (YYYY-MM-DD, default 30 days out)")

	sprintsMilestoneCmd.Flags().StringVar(&flagMilestoneReward, "reward", "0", "Reward amount for hitting the milestone")

	sprintsCmd.AddCommand(sprintsAddCmd)
	sprintsCmd.AddCommand(sprintsAdvanceCmd)
	sprintsCmd.AddCommand(sprintsMilestoneCmd)
	rootCmd.AddCommand(sprintsCmd)
}

func runSprints(_ *cobra.Command, _ []string) error {
	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	now := time.Now()
	sprints := tr.Sprints()
	if len(sprints) == 0 {
		fmt.Println("\n  No sprints yet. Start one with `finsprint sprints add`.")
		return nil
	}

	fmt.Println()
	for _, s := range sprints {
		if !flagSprintAll && (!s.IsActive || s.EndDate.Before(now)) {
			continue
		}

		fmt.Printf("  %s  %s\n", cli.ShortID(s.ID), s.Title)
		fmt.Printf("    %s  %s of %s  %dd left  (%s)\n",
			cli.RenderProgressBar(s.Progress(), 24),
			cli.FormatMoney(s.CurrentAmount, cfg.General.Currency),
			cli.FormatMoney(s.GoalAmount, cfg.General.Currency),
			s.DaysRemaining(now),
			s.Category)

		for _, m := range s.Milestones {
			mark := "○"
			if m.IsCompleted {
				mark = cli.GoodStyle.Render("●")
			}
			fmt.Printf("    %s %s at %s\n", mark, m.Title,
				cli.FormatMoney(m.TargetAmount, cfg.General.Currency))
		}
		fmt.Println()
	}

	return nil
}

func runSprintsAdd(_ *cobra.Command, args []string) error {
	goal, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid goal amount %q", args[1])
	}

	start := time.Now()
	if flagAddSprintStart != "" {
		if start, err = parseDate(flagAddSprintStart); err != nil {
			return err
		}
	}
	end := start.AddDate(0, 0, 30)
	if flagAddSprintEnd != "" {
		if end, err = parseDate(flagAddSprintEnd); err != nil {
			return err
		}
	}

	sprint, err := model.NewSprint(args[0], flagAddSprintDescription, goal,
		start, end, model.SprintCategory(flagAddSprintCategory))
	if err != nil {
		return err
	}

	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tr.AddSprint(sprint); err != nil {
		return err
	}

	fmt.Printf("  Started sprint %s  %s, goal %s by %s\n",
		cli.ShortID(sprint.ID), sprint.Title,
		cli.FormatMoney(sprint.GoalAmount, cfg.General.Currency),
		cli.FormatDate(sprint.EndDate))
	return nil
}

func runSprintsAdvance(_ *cobra.Command, args []string) error {
	delta, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	sprint, err := tr.FindSprint(args[0])
	if err != nil {
		return friendlyErr(err)
	}

	before := sprint.Milestones
	advanced, err := tr.AdvanceSprint(sprint.ID, delta)
	if err != nil {
		return friendlyErr(err)
	}

	fmt.Printf("  %s  %s\n", advanced.Title, cli.RenderProgressBar(advanced.Progress(), 24))
	for i, m := range advanced.Milestones {
		if m.IsCompleted && i < len(before) && !before[i].IsCompleted {
			fmt.Printf("  Milestone reached: %s (reward %s)\n",
				m.Title, cli.FormatMoney(m.Reward, cfg.General.Currency))
		}
	}
	return nil
}

func runSprintsMilestone(_ *cobra.Command, args []string) error {
	target, err := decimal.NewFromString(args[2])
	if err != nil || !target.IsPositive() {
		return fmt.Errorf("invalid target amount %q", args[2])
	}
	reward, err := decimal.NewFromString(flagMilestoneReward)
	if err != nil || reward.IsNegative() {
		return fmt.Errorf("invalid reward amount %q", flagMilestoneReward)
	}

	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	sprint, err := tr.FindSprint(args[0])
	if err != nil {
		return friendlyErr(err)
	}

	sprint.Milestones = append(sprint.Milestones, model.NewMilestone(args[1], target, reward))
	if _, err := tr.ReplaceSprint(sprint); err != nil {
		return friendlyErr(err)
	}

	fmt.Printf("  Added milestone %q at %s to %s\n",
		args[1], cli.FormatMoney(target, cfg.General.Currency), sprint.Title)
	return nil
}
