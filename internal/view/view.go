// Package view computes read-only projections of a task collection. Every
// function is pure and recomputes from the collection it is given.
package view

import (
	"math"

	cmerrors "github.com/abatilo/checkmate/internal/errors"
	"github.com/abatilo/checkmate/internal/task"
)

// StatusFilter selects tasks by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// PriorityFilter selects tasks by priority.
type PriorityFilter string

const (
	PriorityAll    PriorityFilter = "all"
	PriorityLow    PriorityFilter = PriorityFilter(task.PriorityLow)
	PriorityNormal PriorityFilter = PriorityFilter(task.PriorityNormal)
	PriorityHigh   PriorityFilter = PriorityFilter(task.PriorityHigh)
)

// ParseStatusFilter validates a status filter. Empty means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(s); f {
	case "":
		return StatusAll, nil
	case StatusAll, StatusActive, StatusCompleted:
		return f, nil
	default:
		return "", cmerrors.InvalidStatusFilterError{Value: s}
	}
}

// ParsePriorityFilter validates a priority filter. Empty means all.
func ParsePriorityFilter(s string) (PriorityFilter, error) {
	switch f := PriorityFilter(s); f {
	case "":
		return PriorityAll, nil
	case PriorityAll, PriorityLow, PriorityNormal, PriorityHigh:
		return f, nil
	default:
		return "", cmerrors.InvalidPriorityFilterError{Value: s}
	}
}

// FilterByStatus returns the tasks matching status in their original order.
// Unknown filters match everything.
func FilterByStatus(c task.Collection, status StatusFilter) task.Collection {
	return filter(c, func(t task.Task) bool {
		switch status {
		case StatusActive:
			return !t.IsComplete
		case StatusCompleted:
			return t.IsComplete
		default:
			return true
		}
	})
}

// FilterByPriority returns the tasks with the given priority in their
// original order. PriorityAll and unknown filters match everything.
func FilterByPriority(c task.Collection, p PriorityFilter) task.Collection {
	if p == PriorityAll || !task.IsValidPriority(task.Priority(p)) {
		return filter(c, func(task.Task) bool { return true })
	}
	return filter(c, func(t task.Task) bool {
		return t.Priority == task.Priority(p)
	})
}

func filter(c task.Collection, keep func(task.Task) bool) task.Collection {
	out := task.Collection{}
	for _, t := range c {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Stats summarizes completion progress.
type Stats struct {
	Completed int `json:"completed"`
	Active    int `json:"active"`
	// Rate is the completed share in whole percent, 0 for an empty collection.
	Rate int `json:"rate"`
}

// CompletionStats counts completed and active tasks.
func CompletionStats(c task.Collection) Stats {
	var s Stats
	for _, t := range c {
		if t.IsComplete {
			s.Completed++
		} else {
			s.Active++
		}
	}
	s.Rate = percent(s.Completed, len(c))
	return s
}

// PriorityCounts is the number of tasks in each priority bucket.
type PriorityCounts struct {
	High   int `json:"high"`
	Normal int `json:"normal"`
	Low    int `json:"low"`
}

// CountByPriority buckets the collection by priority.
func CountByPriority(c task.Collection) PriorityCounts {
	var pc PriorityCounts
	for _, t := range c {
		switch t.Priority {
		case task.PriorityHigh:
			pc.High++
		case task.PriorityNormal:
			pc.Normal++
		case task.PriorityLow:
			pc.Low++
		}
	}
	return pc
}

// Total returns the number of counted tasks.
func (pc PriorityCounts) Total() int {
	return pc.High + pc.Normal + pc.Low
}

// Count returns the bucket size for p.
func (pc PriorityCounts) Count(p task.Priority) int {
	switch p {
	case task.PriorityHigh:
		return pc.High
	case task.PriorityNormal:
		return pc.Normal
	case task.PriorityLow:
		return pc.Low
	default:
		return 0
	}
}

// Share returns the bucket for p as a whole percentage of all counted tasks.
func (pc PriorityCounts) Share(p task.Priority) int {
	return percent(pc.Count(p), pc.Total())
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}
