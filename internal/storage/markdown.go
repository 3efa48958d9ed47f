package storage

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abatilo/checkmate/internal/task"
)

const frontmatterDelimiter = "---"

// taskFrontmatter is the YAML-serializable portion of a task.
type taskFrontmatter struct {
	ID         int64         `yaml:"id"`
	Text       string        `yaml:"text"`
	IsComplete bool          `yaml:"isComplete"`
	DueDate    string        `yaml:"dueDate,omitempty"`
	Priority   task.Priority `yaml:"priority"`
	Mood       string        `yaml:"mood"`
}

// ParseMarkdown parses a markdown file with YAML frontmatter into a Task.
// Missing priority and mood take their defaults.
func ParseMarkdown(content []byte) (task.Task, error) {
	lines := strings.Split(string(content), "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != frontmatterDelimiter {
		return task.Task{}, &parseError{"missing YAML frontmatter"}
	}

	var frontmatterEnd int
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
			frontmatterEnd = i
			break
		}
	}
	if frontmatterEnd == 0 {
		return task.Task{}, &parseError{"unclosed YAML frontmatter"}
	}

	yamlContent := strings.Join(lines[1:frontmatterEnd], "\n")
	var fm taskFrontmatter
	if err := yaml.Unmarshal([]byte(yamlContent), &fm); err != nil {
		return task.Task{}, &parseError{"invalid YAML: " + err.Error()}
	}

	if task.IsBlank(fm.Text) {
		return task.Task{}, FieldError{Field: "text", Value: fm.Text}
	}
	if fm.Priority == "" {
		fm.Priority = task.PriorityNormal
	}
	if !task.IsValidPriority(fm.Priority) {
		return task.Task{}, FieldError{Field: "priority", Value: string(fm.Priority)}
	}
	if fm.Mood == "" {
		fm.Mood = task.DefaultMood
	}
	if !task.IsValidDueDate(fm.DueDate) {
		return task.Task{}, FieldError{Field: "dueDate", Value: fm.DueDate}
	}

	var description string
	if frontmatterEnd+1 < len(lines) {
		description = strings.TrimSpace(strings.Join(lines[frontmatterEnd+1:], "\n"))
	}

	return task.Task{
		ID:          fm.ID,
		Text:        fm.Text,
		Description: description,
		IsComplete:  fm.IsComplete,
		DueDate:     fm.DueDate,
		Priority:    fm.Priority,
		Mood:        fm.Mood,
	}, nil
}

// SerializeMarkdown converts a Task to markdown with YAML frontmatter.
func SerializeMarkdown(t task.Task) ([]byte, error) {
	fm := taskFrontmatter{
		ID:         t.ID,
		Text:       t.Text,
		IsComplete: t.IsComplete,
		DueDate:    t.DueDate,
		Priority:   t.Priority,
		Mood:       t.Mood,
	}

	var buf bytes.Buffer
	buf.WriteString(frontmatterDelimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return nil, err
	}
	enc.Close()

	buf.WriteString(frontmatterDelimiter + "\n")

	if t.Description != "" {
		buf.WriteString("\n")
		buf.WriteString(t.Description)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}
