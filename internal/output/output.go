package output

import (
	"github.com/abatilo/checkmate/internal/reward"
	"github.com/abatilo/checkmate/internal/task"
	"github.com/abatilo/checkmate/internal/view"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTask(t task.Task) string
	FormatTaskList(tasks task.Collection) string
	FormatStats(s view.Stats) string
	FormatPriorityCounts(pc view.PriorityCounts) string
	FormatToggle(t task.Task, message string) string
	FormatCards(cards []reward.Card) string
	FormatReward(card reward.Card, fresh bool) string
	FormatTheme(dark bool) string
	FormatMoods(moods []string) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
