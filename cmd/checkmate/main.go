package main

import (
	"context"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abatilo/checkmate/internal/config"
	cmerrors "github.com/abatilo/checkmate/internal/errors"
	"github.com/abatilo/checkmate/internal/kv"
	"github.com/abatilo/checkmate/internal/output"
	"github.com/abatilo/checkmate/internal/reward"
	"github.com/abatilo/checkmate/internal/storage"
	"github.com/abatilo/checkmate/internal/store"
	"github.com/abatilo/checkmate/internal/task"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	verbose    bool
	ephemeral  bool
	configPath string
	formatter  output.Formatter
)

func main() {
	// A missing .env file is the common case.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "checkmate",
		Short: "A personal task list with celebrations",
		Long:  "checkmate - create, complete and filter tasks, and scratch reward cards as you finish them.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setFormatter(false)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log storage errors to stderr")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep state in memory only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/checkmate/config.yaml)")

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		showCmd(),
		toggleCmd(),
		editCmd(),
		priorityCmd(),
		rmCmd(),
		clearCompletedCmd(),
		statsCmd(),
		prioritiesCmd(),
		moodsCmd(),
		themeCmd(),
		cardsCmd(),
		exportCmd(),
		importCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setFormatter picks the formatter for --json or the human palette for the
// display preference.
func setFormatter(dark bool) {
	if jsonOutput {
		formatter = output.NewJSONFormatter()
	} else {
		formatter = output.NewHumanFormatter(os.Stdout, dark)
	}
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

func newLogger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "checkmate: ", 0)
	}
	return log.New(io.Discard, "", 0)
}

// app wires the backend, adapter and store for one command invocation.
// celebration is set by the store subscription when a task was completed.
type app struct {
	backend     kv.Backend
	adapter     *storage.Adapter
	store       *store.Store
	rng         *rand.Rand
	dark        bool
	celebration string
}

// openApp loads configuration, opens the backend and initializes the store.
// Completions pick a celebration message through a store subscription.
func openApp(ctx context.Context) (*app, error) {
	path := configPath
	if path == "" {
		path, _ = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if ephemeral {
		cfg.Storage.Backend = kv.BackendMemory
	}
	if err = cfg.ResolvePaths(storage.DefaultDataDir); err != nil {
		return nil, err
	}

	backend, err := kv.Open(ctx, cfg.KVOptions())
	if err != nil {
		return nil, err
	}

	adapter := storage.NewAdapter(backend, newLogger())
	a := &app{
		backend: backend,
		adapter: adapter,
		store:   store.New(adapter),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // not security sensitive
		dark:    adapter.LoadPreference(ctx),
	}
	a.store.Initialize(ctx)
	setFormatter(a.dark)

	a.store.Subscribe(func(ev store.Event) {
		if ev.Completed {
			a.celebration = reward.Message(a.rng)
		}
	})
	return a, nil
}

func mustOpenApp(cmd *cobra.Command) *app {
	a, err := openApp(cmd.Context())
	if err != nil {
		printError(err)
	}
	return a
}

func (a *app) close() {
	if err := a.backend.Close(); err != nil {
		newLogger().Printf("close backend: %v", err)
	}
}

// findTask parses arg as a task id and looks it up in the current collection.
func (a *app) findTask(arg string) (task.Task, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return task.Task{}, cmerrors.InvalidTaskIDError{Value: arg}
	}
	t, ok := a.store.Tasks().Find(id)
	if !ok {
		return task.Task{}, cmerrors.TaskNotFoundError{ID: id}
	}
	return t, nil
}
