//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// TaskNotFoundError indicates no task has the given ID.
type TaskNotFoundError struct {
	ID int64
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

// InvalidTaskIDError indicates an argument that is not a task ID.
type InvalidTaskIDError struct {
	Value string
}

func (e InvalidTaskIDError) Error() string {
	return fmt.Sprintf("invalid task id: %s", e.Value)
}

// EmptyTextError indicates task text that is empty after trimming.
type EmptyTextError struct{}

func (e EmptyTextError) Error() string {
	return "task text is required"
}

// InvalidPriorityError indicates an invalid priority value.
type InvalidPriorityError struct {
	Value string
}

func (e InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %s (valid: low, normal, high)", e.Value)
}

// InvalidMoodError indicates a mood outside the selectable set.
type InvalidMoodError struct {
	Value string
}

func (e InvalidMoodError) Error() string {
	return fmt.Sprintf("invalid mood: %s (run 'checkmate moods' to list them)", e.Value)
}

// InvalidDueDateError indicates a due date that is not YYYY-MM-DD.
type InvalidDueDateError struct {
	Value string
}

func (e InvalidDueDateError) Error() string {
	return fmt.Sprintf("invalid due date: %s (expected YYYY-MM-DD)", e.Value)
}

// InvalidStatusFilterError indicates an unknown status filter.
type InvalidStatusFilterError struct {
	Value string
}

func (e InvalidStatusFilterError) Error() string {
	return fmt.Sprintf("invalid status: %s (valid: all, active, completed)", e.Value)
}

// InvalidPriorityFilterError indicates an unknown priority filter.
type InvalidPriorityFilterError struct {
	Value string
}

func (e InvalidPriorityFilterError) Error() string {
	return fmt.Sprintf("invalid priority filter: %s (valid: all, low, normal, high)", e.Value)
}

// CardOutOfRangeError indicates a scratch card index outside the deck.
type CardOutOfRangeError struct {
	Index int
	Count int
}

func (e CardOutOfRangeError) Error() string {
	return fmt.Sprintf("card %d does not exist (valid: 1-%d)", e.Index+1, e.Count)
}

// InvalidCardError indicates a card argument that is not a number.
type InvalidCardError struct {
	Value string
}

func (e InvalidCardError) Error() string {
	return fmt.Sprintf("invalid card: %s (expected a number)", e.Value)
}

// InvalidThemeError indicates an unknown theme argument.
type InvalidThemeError struct {
	Value string
}

func (e InvalidThemeError) Error() string {
	return fmt.Sprintf("invalid theme: %s (valid: show, toggle, dark, light)", e.Value)
}
