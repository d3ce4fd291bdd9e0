package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/metrics"
	"github.com/theirongolddev/finsprint/internal/model"
	"github.com/theirongolddev/finsprint/internal/query"
)

var (
	flagTaskPriority  string
	flagTaskCategory  string
	flagTaskCompleted bool
	flagTaskAll       bool
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks, urgent first",
	RunE:  runTasks,
}

var (
	flagAddTaskDescription string
	flagAddTaskCategory    string
	flagAddTaskPriority    string
	flagAddTaskDue         string
	flagAddTaskReward      string
	flagAddTaskRewardType  string
)

var tasksAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Create a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksAdd,
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done TASK",
	Short: "Toggle task completion (by id prefix or exact title)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksDone,
}

func init() {
	tasksCmd.Flags().StringVarP(&flagTaskPriority, "priority", "p", "", "Filter to a priority (Low, Medium, High, Urgent)")
	tasksCmd.Flags().StringVarP(&flagTaskCategory, "category", "c", "", "Filter to a category label")
	tasksCmd.Flags().BoolVar(&flagTaskCompleted, "completed", false, "Show completed tasks instead of active ones")
	tasksCmd.Flags().BoolVarP(&flagTaskAll, "all", "a", false, "Show both active and completed tasks")

	tasksAddCmd.Flags().StringVar(&flagAddTaskDescription, "description", "", "Longer description")
	tasksAddCmd.Flags().StringVarP(&flagAddTaskCategory, "category", "c", string(model.TaskPersonal), "Category label")
	tasksAddCmd.Flags().StringVarP(&flagAddTaskPriority, "priority", "p", string(model.PriorityMedium), "Priority")
	tasksAddCmd.Flags().StringVar(&flagAddTaskDue, "due", "", "Due date (YYYY-MM-DD)")
	tasksAddCmd.Flags().StringVar(&flagAddTaskReward, "reward", "", "Reward amount for completing the task")
	tasksAddCmd.Flags().StringVar(&flagAddTaskRewardType, "reward-type", string(model.RewardMoney), "Reward type: Money, Points, or Allowance")

	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksDoneCmd)
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(_ *cobra.Command, _ []string) error {
	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	filter := query.TaskFilter{
		Priority: model.TaskPriority(flagTaskPriority),
		Category: model.TaskCategory(flagTaskCategory),
	}
	if !flagTaskAll {
		completed := flagTaskCompleted
		filter.Completed = &completed
	}

	filtered := query.FilterTasks(tr.Tasks(), filter)
	if len(filtered) == 0 {
		fmt.Println("\n  No tasks found.")
		return nil
	}

	rows := make([][]string, 0, len(filtered))
	for _, t := range filtered {
		due := ""
		if t.DueDate != nil {
			due = cli.FormatDate(*t.DueDate)
		}
		reward := ""
		if t.Reward != nil {
			reward = cli.FormatMoney(t.Reward.Amount, cfg.General.Currency)
		}
		status := " "
		if t.IsCompleted {
			status = cli.GoodStyle.Render("✓")
		}
		rows = append(rows, []string{
			cli.ShortID(t.ID),
			status,
			cli.Truncate(t.Title, 30),
			cli.PriorityLabel(t.Priority),
			string(t.Category),
			due,
			cli.FormatDuration(t.EstimatedDuration),
			reward,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     "Tasks",
		Headers:   []string{"ID", "", "Title", "Priority", "Category", "Due", "Est.", "Reward"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true},
	}))

	potential := metrics.TotalPotentialRewards(tr.Tasks())
	if potential.IsPositive() {
		fmt.Printf("  Potential rewards: %s\n", cli.FormatMoney(potential, cfg.General.Currency))
	}
	fmt.Println()

	return nil
}

func runTasksAdd(_ *cobra.Command, args []string) error {
	task, err := model.NewTask(args[0], flagAddTaskDescription,
		model.TaskCategory(flagAddTaskCategory), model.TaskPriority(flagAddTaskPriority))
	if err != nil {
		return err
	}

	if flagAddTaskDue != "" {
		due, err := parseDate(flagAddTaskDue)
		if err != nil {
			return err
		}
		task.DueDate = &due
	}
	if flagAddTaskReward != "" {
		amount, err := decimal.NewFromString(flagAddTaskReward)
		if err != nil || amount.IsNegative() {
			return fmt.Errorf("invalid reward amount %q", flagAddTaskReward)
		}
		task.Reward = &model.TaskReward{
			Type:        model.RewardType(flagAddTaskRewardType),
			Amount:      amount,
			Description: fmt.Sprintf("Reward for %q", task.Title),
		}
	}

	tr, _, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tr.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("  Added task %s  %s [%s/%s]\n",
		cli.ShortID(task.ID), task.Title, task.Priority, task.Category)
	return nil
}

func runTasksDone(_ *cobra.Command, args []string) error {
	tr, _, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	task, err := tr.FindTask(args[0])
	if err != nil {
		return friendlyErr(err)
	}

	toggled, err := tr.ToggleTask(task.ID)
	if err != nil {
		return friendlyErr(err)
	}

	if toggled.IsCompleted {
		fmt.Printf("  Completed %q", toggled.Title)
		if toggled.Reward != nil {
			fmt.Printf("  — claim your %s reward", toggled.Reward.Type)
		}
		fmt.Println()
	} else {
		fmt.Printf("  Reopened %q\n", toggled.Title)
	}
	return nil
}
