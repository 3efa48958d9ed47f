package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abatilo/checkmate/internal/storage"
	"github.com/abatilo/checkmate/internal/task"
)

const (
	exportDirPerm  = 0o750
	exportFilePerm = 0o600
)

// exportCmd implements 'checkmate export'.
func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Write every task to <dir> as a markdown file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a := mustOpenApp(cmd)
			defer a.close()

			if err := os.MkdirAll(args[0], exportDirPerm); err != nil {
				printError(err)
			}

			tasks := a.store.Tasks()
			for _, t := range tasks {
				data, err := storage.SerializeMarkdown(t)
				if err != nil {
					printError(err)
				}
				path := filepath.Join(args[0], strconv.FormatInt(t.ID, 10)+".md")
				if err := os.WriteFile(path, data, exportFilePerm); err != nil {
					printError(err)
				}
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Exported %d task(s) to %s", len(tasks), args[0])))
		},
	}
}

// importCmd implements 'checkmate import'. Imported tasks get fresh ids.
func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Add tasks from markdown files",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			// Parse everything first so a bad file imports nothing.
			parsed := make([]task.Task, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
				if err != nil {
					printError(err)
				}
				t, err := storage.ParseMarkdown(data)
				if err != nil {
					printError(fmt.Errorf("%s: %w", path, err))
				}
				parsed = append(parsed, t)
			}

			a := mustOpenApp(cmd)
			defer a.close()

			for _, t := range parsed {
				mood := t.Mood
				if !task.IsValidMood(mood) {
					mood = task.DefaultMood
				}
				c := a.store.Add(ctx, task.Draft{
					Text:        t.Text,
					Description: t.Description,
					DueDate:     t.DueDate,
					Priority:    t.Priority,
					Mood:        mood,
				})
				if t.IsComplete {
					a.store.ToggleComplete(ctx, c[len(c)-1].ID)
				}
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Imported %d task(s)", len(parsed))))
		},
	}
}
