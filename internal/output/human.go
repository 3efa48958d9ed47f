package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abatilo/checkmate/internal/reward"
	"github.com/abatilo/checkmate/internal/task"
	"github.com/abatilo/checkmate/internal/view"
)

const barWidth = 20

// palette holds the colors for one display preference.
type palette struct {
	accent, muted, high, normal, low lipgloss.Color
}

//nolint:gochecknoglobals // fixed color tables
var (
	darkPalette = palette{
		accent: "#C084FC",
		muted:  "#9CA3AF",
		high:   "#F87171",
		normal: "#4ADE80",
		low:    "#60A5FA",
	}
	lightPalette = palette{
		accent: "#7C3AED",
		muted:  "#6B7280",
		high:   "#DC2626",
		normal: "#16A34A",
		low:    "#2563EB",
	}
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct {
	title    lipgloss.Style
	muted    lipgloss.Style
	done     lipgloss.Style
	priority map[task.Priority]lipgloss.Style
}

// NewHumanFormatter creates a HumanFormatter for output written to w,
// colored with the dark or light palette.
func NewHumanFormatter(w io.Writer, dark bool) *HumanFormatter {
	r := lipgloss.NewRenderer(w)
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return &HumanFormatter{
		title: r.NewStyle().Bold(true).Foreground(p.accent),
		muted: r.NewStyle().Foreground(p.muted),
		done:  r.NewStyle().Foreground(p.muted).Strikethrough(true),
		priority: map[task.Priority]lipgloss.Style{
			task.PriorityHigh:   r.NewStyle().Foreground(p.high),
			task.PriorityNormal: r.NewStyle().Foreground(p.normal),
			task.PriorityLow:    r.NewStyle().Foreground(p.low),
		},
	}
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(t task.Task) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%d] %s %s\n", t.ID, t.Mood, f.title.Render(t.Text))
	fmt.Fprintf(&sb, "  Status:   %s\n", statusLabel(t))
	fmt.Fprintf(&sb, "  Priority: %s\n", f.priorityLabel(t.Priority))
	if t.DueDate != "" {
		fmt.Fprintf(&sb, "  Due:      %s\n", t.DueDate)
	}
	if t.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatTaskList formats a list of tasks for display.
func (f *HumanFormatter) FormatTaskList(tasks task.Collection) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(f.formatTaskLine(t))
	}
	return sb.String()
}

// formatTaskLine formats a single task as a compact one-liner.
func (f *HumanFormatter) formatTaskLine(t task.Task) string {
	text := t.Text
	if t.IsComplete {
		text = f.done.Render(text)
	}
	due := ""
	if t.DueDate != "" {
		due = f.muted.Render(" (due " + t.DueDate + ")")
	}
	return fmt.Sprintf("%s %s [%d] %s %s%s\n",
		statusIcon(t), f.priorityLabel(t.Priority), t.ID, t.Mood, text, due)
}

func statusIcon(t task.Task) string {
	if t.IsComplete {
		return "[X]"
	}
	return "[ ]"
}

func statusLabel(t task.Task) string {
	if t.IsComplete {
		return "completed"
	}
	return "active"
}

func (f *HumanFormatter) priorityLabel(p task.Priority) string {
	label := fmt.Sprintf("%-6s", p)
	if style, ok := f.priority[p]; ok {
		return style.Render(label)
	}
	return label
}

// FormatStats formats completion progress with a progress bar.
func (f *HumanFormatter) FormatStats(s view.Stats) string {
	var sb strings.Builder
	sb.WriteString(f.title.Render("Progress") + "\n")
	fmt.Fprintf(&sb, "  %s %d%%\n", f.bar(s.Rate, f.title), s.Rate)
	fmt.Fprintf(&sb, "  Completed: %d\n", s.Completed)
	fmt.Fprintf(&sb, "  Active:    %d\n", s.Active)
	fmt.Fprintf(&sb, "  %d/%d tasks\n", s.Completed, s.Completed+s.Active)
	return sb.String()
}

// FormatPriorityCounts formats the priority distribution as bars.
func (f *HumanFormatter) FormatPriorityCounts(pc view.PriorityCounts) string {
	var sb strings.Builder
	sb.WriteString(f.title.Render("Priorities") + "\n")
	for _, p := range task.Priorities() {
		share := pc.Share(p)
		fmt.Fprintf(&sb, "  %s %s %3d%% (%d)\n", f.priorityLabel(p), f.bar(share, f.priority[p]), share, pc.Count(p))
	}
	return sb.String()
}

func (f *HumanFormatter) bar(percent int, style lipgloss.Style) string {
	filled := percent * barWidth / 100
	return style.Render(strings.Repeat("█", filled)) + f.muted.Render(strings.Repeat("░", barWidth-filled))
}

// FormatToggle formats a task after its completion state flipped. A non-empty
// message is the celebration shown when the task was just completed.
func (f *HumanFormatter) FormatToggle(t task.Task, message string) string {
	if message == "" {
		return f.FormatTask(t)
	}
	return fmt.Sprintf("🎉 %s\n\n%s", f.title.Render(message), f.FormatTask(t))
}

// FormatCards formats the scratch card deck.
func (f *HumanFormatter) FormatCards(cards []reward.Card) string {
	var sb strings.Builder
	sb.WriteString(f.title.Render("Celebration Cards") + "\n")
	for _, c := range cards {
		if c.Revealed {
			fmt.Fprintf(&sb, "  %d. %s %s - %s\n", c.Index+1, c.Reward.Emoji, c.Reward.Title, c.Reward.Description)
		} else {
			fmt.Fprintf(&sb, "  %d. ❓ %s\n", c.Index+1, f.muted.Render("Scratch me!"))
		}
	}
	return sb.String()
}

// FormatReward formats the result of scratching a card.
func (f *HumanFormatter) FormatReward(card reward.Card, fresh bool) string {
	prefix := "You revealed"
	if !fresh {
		prefix = "Already scratched"
	}
	return fmt.Sprintf("%s card %d: %s %s\n  %s\n",
		prefix, card.Index+1, card.Reward.Emoji, f.title.Render(card.Reward.Title), card.Reward.Description)
}

// FormatTheme formats the display preference.
func (f *HumanFormatter) FormatTheme(dark bool) string {
	if dark {
		return "Theme: dark\n"
	}
	return "Theme: light\n"
}

// FormatMoods formats the selectable moods.
func (f *HumanFormatter) FormatMoods(moods []string) string {
	return strings.Join(moods, " ") + "\n"
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
