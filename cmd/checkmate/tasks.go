package main

import (
	"fmt"

	"github.com/spf13/cobra"

	cmerrors "github.com/abatilo/checkmate/internal/errors"
	"github.com/abatilo/checkmate/internal/task"
	"github.com/abatilo/checkmate/internal/view"
)

// validateDraft reports why the store would reject d, so the user sees an
// error instead of a silent no-op.
func validateDraft(d task.Draft) error {
	if task.IsBlank(d.Text) {
		return cmerrors.EmptyTextError{}
	}
	if !task.IsValidPriority(d.Priority) {
		return cmerrors.InvalidPriorityError{Value: string(d.Priority)}
	}
	if !task.IsValidMood(d.Mood) {
		return cmerrors.InvalidMoodError{Value: d.Mood}
	}
	if !task.IsValidDueDate(d.DueDate) {
		return cmerrors.InvalidDueDateError{Value: d.DueDate}
	}
	return nil
}

// addCmd implements 'checkmate add'.
func addCmd() *cobra.Command {
	var d task.Draft
	var priority string
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			d.Text = args[0]
			d.Priority = task.Priority(priority)
			if err := validateDraft(d); err != nil {
				printError(err)
			}

			c := a.store.Add(cmd.Context(), d)
			printOutput(formatter.FormatTask(c[len(c)-1]))
		},
	}
	cmd.Flags().StringVarP(&d.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVar(&d.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(task.PriorityNormal), "Priority (low, normal, high)")
	cmd.Flags().StringVarP(&d.Mood, "mood", "m", task.DefaultMood, "Mood emoji (see 'checkmate moods')")
	return cmd
}

// listCmd implements 'checkmate list'.
func listCmd() *cobra.Command {
	var status, priority string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Run: func(cmd *cobra.Command, _ []string) {
			statusFilter, err := view.ParseStatusFilter(status)
			if err != nil {
				printError(err)
			}
			priorityFilter, err := view.ParsePriorityFilter(priority)
			if err != nil {
				printError(err)
			}

			a := mustOpenApp(cmd)
			defer a.close()

			tasks := view.FilterByStatus(a.store.Tasks(), statusFilter)
			tasks = view.FilterByPriority(tasks, priorityFilter)
			printOutput(formatter.FormatTaskList(tasks))
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", string(view.StatusAll), "Status filter (all, active, completed)")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(view.PriorityAll), "Priority filter (all, low, normal, high)")
	return cmd
}

// showCmd implements 'checkmate show'.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			t, err := a.findTask(args[0])
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// toggleCmd implements 'checkmate toggle'.
func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task complete, or active again",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			t, err := a.findTask(args[0])
			if err != nil {
				printError(err)
			}

			c, _ := a.store.ToggleComplete(cmd.Context(), t.ID)
			t, _ = c.Find(t.ID)
			printOutput(formatter.FormatToggle(t, a.celebration))
		},
	}
}

// editCmd implements 'checkmate edit'.
func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Change the text of a task",
		Args:  cobra.ExactArgs(2), //nolint:mnd // CLI takes 2 positional args
		Run: func(cmd *cobra.Command, args []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			t, err := a.findTask(args[0])
			if err != nil {
				printError(err)
			}
			if task.IsBlank(args[1]) {
				printError(cmerrors.EmptyTextError{})
			}

			c := a.store.EditText(cmd.Context(), t.ID, args[1])
			t, _ = c.Find(t.ID)
			printOutput(formatter.FormatTask(t))
		},
	}
}

// priorityCmd implements 'checkmate priority'.
func priorityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priority <id> <low|normal|high>",
		Short: "Change the priority of a task",
		Args:  cobra.ExactArgs(2), //nolint:mnd // CLI takes 2 positional args
		Run: func(cmd *cobra.Command, args []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			t, err := a.findTask(args[0])
			if err != nil {
				printError(err)
			}
			p := task.Priority(args[1])
			if !task.IsValidPriority(p) {
				printError(cmerrors.InvalidPriorityError{Value: args[1]})
			}

			c := a.store.ChangePriority(cmd.Context(), t.ID, p)
			t, _ = c.Find(t.ID)
			printOutput(formatter.FormatTask(t))
		},
	}
}

// rmCmd implements 'checkmate rm'.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			t, err := a.findTask(args[0])
			if err != nil {
				printError(err)
			}

			a.store.Delete(cmd.Context(), t.ID)
			printOutput(formatter.FormatMessage(fmt.Sprintf("Removed task %d", t.ID)))
		},
	}
}

// clearCompletedCmd implements 'checkmate clear-completed'.
func clearCompletedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Remove all completed tasks",
		Run: func(cmd *cobra.Command, _ []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			completed := view.FilterByStatus(a.store.Tasks(), view.StatusCompleted)
			if len(completed) == 0 {
				printOutput(formatter.FormatMessage("No completed tasks to clear"))
				return
			}

			for _, t := range completed {
				a.store.Delete(cmd.Context(), t.ID)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Cleared %d completed task(s)", len(completed))))
		},
	}
}

// statsCmd implements 'checkmate stats'.
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion progress",
		Run: func(cmd *cobra.Command, _ []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			printOutput(formatter.FormatStats(view.CompletionStats(a.store.Tasks())))
		},
	}
}

// prioritiesCmd implements 'checkmate priorities'.
func prioritiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priorities",
		Short: "Show how tasks are distributed across priorities",
		Run: func(cmd *cobra.Command, _ []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			printOutput(formatter.FormatPriorityCounts(view.CountByPriority(a.store.Tasks())))
		},
	}
}

// moodsCmd implements 'checkmate moods'.
func moodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List the moods a task can be tagged with",
		Run: func(_ *cobra.Command, _ []string) {
			printOutput(formatter.FormatMoods(task.Moods()))
		},
	}
}
