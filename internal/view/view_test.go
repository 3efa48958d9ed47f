//nolint:testpackage // Tests require internal access for thorough testing
package view

import (
	"errors"
	"slices"
	"testing"

	cmerrors "github.com/abatilo/checkmate/internal/errors"
	"github.com/abatilo/checkmate/internal/task"
)

func sample() task.Collection {
	return task.Collection{
		{ID: 1, Text: "a", Priority: task.PriorityHigh},
		{ID: 2, Text: "b", Priority: task.PriorityNormal, IsComplete: true},
		{ID: 3, Text: "c", Priority: task.PriorityLow},
		{ID: 4, Text: "d", Priority: task.PriorityHigh, IsComplete: true},
		{ID: 5, Text: "e", Priority: task.PriorityNormal},
	}
}

func ids(c task.Collection) []int64 {
	out := make([]int64, 0, len(c))
	for _, t := range c {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterByStatus(t *testing.T) {
	tests := []struct {
		status StatusFilter
		want   []int64
	}{
		{StatusAll, []int64{1, 2, 3, 4, 5}},
		{StatusActive, []int64{1, 3, 5}},
		{StatusCompleted, []int64{2, 4}},
		{StatusFilter("bogus"), []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := ids(FilterByStatus(sample(), tt.status)); !slices.Equal(got, tt.want) {
				t.Errorf("FilterByStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestActiveAndCompletedPartitionCollection(t *testing.T) {
	collections := []task.Collection{
		{},
		sample(),
		{{ID: 9, Text: "only", IsComplete: true}},
	}

	for _, c := range collections {
		active := FilterByStatus(c, StatusActive)
		completed := FilterByStatus(c, StatusCompleted)

		if len(active)+len(completed) != len(c) {
			t.Fatalf("partition sizes %d+%d != %d", len(active), len(completed), len(c))
		}

		// Merging both sides back in id order reproduces c exactly.
		merged := append(active.Clone(), completed...)
		slices.SortFunc(merged, func(a, b task.Task) int { return int(a.ID - b.ID) })
		if !slices.Equal(merged, c) {
			t.Errorf("active ∪ completed = %v, want %v", ids(merged), ids(c))
		}
	}
}

func TestFilterByPriority(t *testing.T) {
	tests := []struct {
		priority PriorityFilter
		want     []int64
	}{
		{PriorityAll, []int64{1, 2, 3, 4, 5}},
		{PriorityHigh, []int64{1, 4}},
		{PriorityNormal, []int64{2, 5}},
		{PriorityLow, []int64{3}},
		{PriorityFilter("urgent"), []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := ids(FilterByPriority(sample(), tt.priority)); !slices.Equal(got, tt.want) {
				t.Errorf("FilterByPriority(%q) = %v, want %v", tt.priority, got, tt.want)
			}
		})
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	c := sample()
	got := FilterByStatus(c, StatusAll)
	got[0].Text = "changed"
	if c[0].Text != "a" {
		t.Error("FilterByStatus result shares storage with its input")
	}
}

func TestCompletionStats(t *testing.T) {
	tests := []struct {
		name string
		c    task.Collection
		want Stats
	}{
		{"empty", task.Collection{}, Stats{Completed: 0, Active: 0, Rate: 0}},
		{"nil", nil, Stats{}},
		{"sample", sample(), Stats{Completed: 2, Active: 3, Rate: 40}},
		{"rounds half up", task.Collection{{ID: 1, IsComplete: true}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}, {ID: 7}, {ID: 8}}, Stats{Completed: 1, Active: 7, Rate: 13}},
		{"two thirds", task.Collection{{ID: 1, IsComplete: true}, {ID: 2, IsComplete: true}, {ID: 3}}, Stats{Completed: 2, Active: 1, Rate: 67}},
		{"all done", task.Collection{{ID: 1, IsComplete: true}}, Stats{Completed: 1, Active: 0, Rate: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionStats(tt.c); got != tt.want {
				t.Errorf("CompletionStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCountByPriority(t *testing.T) {
	pc := CountByPriority(sample())

	want := PriorityCounts{High: 2, Normal: 2, Low: 1}
	if pc != want {
		t.Fatalf("CountByPriority() = %+v, want %+v", pc, want)
	}
	if pc.Total() != 5 {
		t.Errorf("Total() = %d, want 5", pc.Total())
	}
	if got := pc.Share(task.PriorityHigh); got != 40 {
		t.Errorf("Share(high) = %d, want 40", got)
	}
	if got := pc.Share(task.PriorityLow); got != 20 {
		t.Errorf("Share(low) = %d, want 20", got)
	}
	if got := (PriorityCounts{}).Share(task.PriorityHigh); got != 0 {
		t.Errorf("Share on empty counts = %d, want 0", got)
	}
}

func TestParseFilters(t *testing.T) {
	if f, err := ParseStatusFilter(""); err != nil || f != StatusAll {
		t.Errorf("ParseStatusFilter(\"\") = %q, %v", f, err)
	}
	if f, err := ParseStatusFilter("completed"); err != nil || f != StatusCompleted {
		t.Errorf("ParseStatusFilter(completed) = %q, %v", f, err)
	}
	_, err := ParseStatusFilter("done")
	var statusErr cmerrors.InvalidStatusFilterError
	if !errors.As(err, &statusErr) {
		t.Errorf("ParseStatusFilter(done) error = %v, want InvalidStatusFilterError", err)
	}

	if f, err := ParsePriorityFilter("low"); err != nil || f != PriorityLow {
		t.Errorf("ParsePriorityFilter(low) = %q, %v", f, err)
	}
	_, err = ParsePriorityFilter("medium")
	var prioErr cmerrors.InvalidPriorityFilterError
	if !errors.As(err, &prioErr) {
		t.Errorf("ParsePriorityFilter(medium) error = %v, want InvalidPriorityFilterError", err)
	}
}
