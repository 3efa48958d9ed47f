package task

import (
	"slices"
	"strings"
	"time"
)

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// DefaultMood is assigned to tasks created without a mood.
const DefaultMood = "😊"

// DueDateLayout is the accepted due date format.
const DueDateLayout = "2006-01-02"

//nolint:gochecknoglobals // fixed palette offered to users
var moods = []string{"😊", "😎", "🤔", "😫", "😡", "🥳", "😴"}

// Moods returns the selectable mood labels in display order.
func Moods() []string {
	return slices.Clone(moods)
}

// Priorities returns all priorities from most to least important.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityNormal, PriorityLow}
}

// PriorityOrder returns the sort order for a priority (lower = higher priority).
func PriorityOrder(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityNormal:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Task represents one user-created task.
type Task struct {
	ID          int64    `json:"id"`
	Text        string   `json:"text"`
	Description string   `json:"description"`
	IsComplete  bool     `json:"isComplete"`
	DueDate     string   `json:"dueDate,omitempty"`
	Priority    Priority `json:"priority"`
	Mood        string   `json:"mood"`
}

// Draft holds the user-supplied fields of a task that has not been created yet.
type Draft struct {
	Text        string
	Description string
	DueDate     string
	Priority    Priority
	Mood        string
}

// Valid reports whether the draft can become a task. Empty priority and mood
// are allowed and take their defaults; the due date must be empty or
// YYYY-MM-DD.
func (d Draft) Valid() bool {
	if IsBlank(d.Text) {
		return false
	}
	if d.Priority != "" && !IsValidPriority(d.Priority) {
		return false
	}
	if d.Mood != "" && !IsValidMood(d.Mood) {
		return false
	}
	return IsValidDueDate(d.DueDate)
}

// Build creates a task from the draft with the given id and defaults applied.
func (d Draft) Build(id int64) Task {
	p := d.Priority
	if p == "" {
		p = PriorityNormal
	}
	mood := d.Mood
	if mood == "" {
		mood = DefaultMood
	}
	return Task{
		ID:          id,
		Text:        d.Text,
		Description: d.Description,
		DueDate:     d.DueDate,
		Priority:    p,
		Mood:        mood,
	}
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidPriority checks if a priority string is valid.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return true
	default:
		return false
	}
}

// IsValidMood checks if a mood is one of the selectable moods.
func IsValidMood(m string) bool {
	return slices.Contains(moods, m)
}

// IsValidDueDate checks if s is empty or a YYYY-MM-DD date.
func IsValidDueDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(DueDateLayout, s)
	return err == nil
}

// Collection is an ordered list of tasks in creation order.
type Collection []Task

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	if c == nil {
		return Collection{}
	}
	return slices.Clone(c)
}

// Index returns the position of the task with the given id, or -1.
func (c Collection) Index(id int64) int {
	return slices.IndexFunc(c, func(t Task) bool { return t.ID == id })
}

// Find returns the task with the given id.
func (c Collection) Find(id int64) (Task, bool) {
	i := c.Index(id)
	if i < 0 {
		return Task{}, false
	}
	return c[i], true
}

// MaxID returns the largest id in the collection, or 0 when empty.
func (c Collection) MaxID() int64 {
	var m int64
	for _, t := range c {
		m = max(m, t.ID)
	}
	return m
}
