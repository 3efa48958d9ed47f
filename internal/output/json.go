package output

import (
	"encoding/json"

	"github.com/abatilo/checkmate/internal/reward"
	"github.com/abatilo/checkmate/internal/task"
	"github.com/abatilo/checkmate/internal/view"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatTask formats a single task as JSON, using the persisted field names.
func (f *JSONFormatter) FormatTask(t task.Task) string {
	return marshalJSON(t)
}

// FormatTaskList formats a list of tasks as JSON.
func (f *JSONFormatter) FormatTaskList(tasks task.Collection) string {
	if tasks == nil {
		tasks = task.Collection{}
	}
	return marshalJSON(tasks)
}

// FormatStats formats completion progress as JSON.
func (f *JSONFormatter) FormatStats(s view.Stats) string {
	return marshalJSON(s)
}

// priorityBucketJSON is the JSON representation of one priority bucket.
type priorityBucketJSON struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
	Share    int    `json:"share"`
}

// FormatPriorityCounts formats the priority distribution as JSON.
func (f *JSONFormatter) FormatPriorityCounts(pc view.PriorityCounts) string {
	buckets := make([]priorityBucketJSON, 0, len(task.Priorities()))
	for _, p := range task.Priorities() {
		buckets = append(buckets, priorityBucketJSON{
			Priority: string(p),
			Count:    pc.Count(p),
			Share:    pc.Share(p),
		})
	}
	return marshalJSON(buckets)
}

// toggleJSON is the JSON representation of a toggled task.
type toggleJSON struct {
	Task      task.Task `json:"task"`
	Completed bool      `json:"completed"`
	Message   string    `json:"message,omitempty"`
}

// FormatToggle formats a toggled task and its celebration as one JSON document.
func (f *JSONFormatter) FormatToggle(t task.Task, message string) string {
	return marshalJSON(toggleJSON{Task: t, Completed: t.IsComplete, Message: message})
}

// cardJSON is the JSON representation of a scratch card.
type cardJSON struct {
	Card     int            `json:"card"`
	Revealed bool           `json:"revealed"`
	Reward   *reward.Reward `json:"reward,omitempty"`
	Fresh    *bool          `json:"fresh,omitempty"`
}

func toCardJSON(c reward.Card) cardJSON {
	cj := cardJSON{Card: c.Index + 1, Revealed: c.Revealed}
	if c.Revealed {
		r := c.Reward
		cj.Reward = &r
	}
	return cj
}

// FormatCards formats the scratch card deck as JSON.
func (f *JSONFormatter) FormatCards(cards []reward.Card) string {
	out := make([]cardJSON, len(cards))
	for i, c := range cards {
		out[i] = toCardJSON(c)
	}
	return marshalJSON(out)
}

// FormatReward formats the result of scratching a card as JSON.
func (f *JSONFormatter) FormatReward(card reward.Card, fresh bool) string {
	cj := toCardJSON(card)
	cj.Fresh = &fresh
	return marshalJSON(cj)
}

// themeJSON is the JSON representation of the display preference.
type themeJSON struct {
	DarkMode bool `json:"darkMode"`
}

// FormatTheme formats the display preference as JSON.
func (f *JSONFormatter) FormatTheme(dark bool) string {
	return marshalJSON(themeJSON{DarkMode: dark})
}

// FormatMoods formats the selectable moods as JSON.
func (f *JSONFormatter) FormatMoods(moods []string) string {
	return marshalJSON(moods)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
