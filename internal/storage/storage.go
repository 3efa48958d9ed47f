package storage

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/abatilo/checkmate/internal/kv"
	"github.com/abatilo/checkmate/internal/reward"
	"github.com/abatilo/checkmate/internal/task"
)

// Keys of the persisted entries.
const (
	TasksKey      = "todos"
	PreferenceKey = "darkMode"
	SequenceKey   = "todoSeq"
	RewardsKey    = "scratchedRewards"
)

// Adapter reads and writes checkmate state through a kv.Backend. Reads fall
// back to empty values and writes never fail: errors are logged and the
// caller's in-memory state stays authoritative.
type Adapter struct {
	kv     kv.Backend
	logger *log.Logger
}

// NewAdapter creates an Adapter. A nil logger discards log output.
func NewAdapter(b kv.Backend, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Adapter{kv: b, logger: logger}
}

// LoadTasks returns the saved collection. A missing or unparsable snapshot
// yields an empty collection.
func (a *Adapter) LoadTasks(ctx context.Context) task.Collection {
	data, ok := a.get(ctx, TasksKey)
	if !ok {
		return task.Collection{}
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		a.logger.Printf("ignoring corrupt %s snapshot: %v", TasksKey, err)
		return task.Collection{}
	}
	return sanitize(tasks)
}

// SaveTasks overwrites the saved collection.
func (a *Adapter) SaveTasks(ctx context.Context, c task.Collection) {
	if c == nil {
		c = task.Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		a.logger.Printf("encode %s: %v", TasksKey, err)
		return
	}
	a.set(ctx, TasksKey, data)
}

// LoadPreference returns the saved dark mode flag, false when absent.
func (a *Adapter) LoadPreference(ctx context.Context) bool {
	data, ok := a.get(ctx, PreferenceKey)
	if !ok {
		return false
	}
	dark, err := strconv.ParseBool(strings.TrimSpace(string(data)))
	if err != nil {
		a.logger.Printf("ignoring corrupt %s value %q", PreferenceKey, data)
		return false
	}
	return dark
}

// SavePreference overwrites the dark mode flag.
func (a *Adapter) SavePreference(ctx context.Context, dark bool) {
	a.set(ctx, PreferenceKey, []byte(strconv.FormatBool(dark)))
}

// LoadSequence returns the highest task id ever issued, 0 when absent.
func (a *Adapter) LoadSequence(ctx context.Context) int64 {
	data, ok := a.get(ctx, SequenceKey)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		a.logger.Printf("ignoring corrupt %s value %q", SequenceKey, data)
		return 0
	}
	return n
}

// SaveSequence overwrites the highest issued task id.
func (a *Adapter) SaveSequence(ctx context.Context, n int64) {
	a.set(ctx, SequenceKey, []byte(strconv.FormatInt(n, 10)))
}

// LoadRewards returns the revealed scratch cards by index.
func (a *Adapter) LoadRewards(ctx context.Context) map[int]reward.Reward {
	revealed := make(map[int]reward.Reward)
	data, ok := a.get(ctx, RewardsKey)
	if !ok {
		return revealed
	}
	if err := json.Unmarshal(data, &revealed); err != nil {
		a.logger.Printf("ignoring corrupt %s snapshot: %v", RewardsKey, err)
		return make(map[int]reward.Reward)
	}
	return revealed
}

// SaveRewards overwrites the revealed scratch cards.
func (a *Adapter) SaveRewards(ctx context.Context, revealed map[int]reward.Reward) {
	data, err := json.Marshal(revealed)
	if err != nil {
		a.logger.Printf("encode %s: %v", RewardsKey, err)
		return
	}
	a.set(ctx, RewardsKey, data)
}

func (a *Adapter) get(ctx context.Context, key string) ([]byte, bool) {
	data, err := a.kv.Get(ctx, key)
	if err != nil {
		if !kv.IsNotFound(err) {
			a.logger.Printf("load %s: %v", key, err)
		}
		return nil, false
	}
	return data, true
}

func (a *Adapter) set(ctx context.Context, key string, data []byte) {
	if err := a.kv.Set(ctx, key, data); err != nil {
		a.logger.Printf("save %s: %v", key, err)
	}
}

// sanitize drops records that would break collection invariants (blank
// text, zero or duplicate ids) and fills defaults for unknown priority and
// mood values.
func sanitize(tasks []task.Task) task.Collection {
	c := make(task.Collection, 0, len(tasks))
	seen := make(map[int64]bool, len(tasks))
	for _, t := range tasks {
		if t.ID == 0 || seen[t.ID] || task.IsBlank(t.Text) {
			continue
		}
		seen[t.ID] = true
		if !task.IsValidPriority(t.Priority) {
			t.Priority = task.PriorityNormal
		}
		if !task.IsValidMood(t.Mood) {
			t.Mood = task.DefaultMood
		}
		c = append(c, t)
	}
	return c
}
