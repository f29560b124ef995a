package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date layout used on every task date input and output.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Task represents a single project task on the report timeline.
type Task struct {
	Name       string
	Start      time.Time
	End        time.Time
	Completion int // Percentage, 0-100.
}

// DurationDays returns the number of calendar days the task spans, both
// start and end days included.
func (t Task) DurationDays() int {
	return int(t.End.Sub(t.Start)/day) + 1
}

// CompletionLabel returns the completion as a percentage string (e.g. "70%").
func (t Task) CompletionLabel() string {
	return fmt.Sprintf("%d%%", t.Completion)
}

// EndExclusive returns the instant where the last task day finishes.
func (t Task) EndExclusive() time.Time {
	return t.End.Add(day)
}

// Validate validates the task.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("name is required: %w", ErrNotValid)
	}

	if t.Start.IsZero() {
		return fmt.Errorf("start date is required: %w", ErrNotValid)
	}

	if t.End.IsZero() {
		return fmt.Errorf("end date is required: %w", ErrNotValid)
	}

	if t.End.Before(t.Start) {
		return fmt.Errorf("end date %s is before start date %s: %w", FormatDate(t.End), FormatDate(t.Start), ErrNotValid)
	}

	if t.Completion < 0 || t.Completion > 100 {
		return fmt.Errorf("completion must be between 0 and 100, got: %d: %w", t.Completion, ErrNotValid)
	}

	return nil
}

// ValidateTasks validates a task list, an empty list is not valid.
func ValidateTasks(tasks []Task) error {
	if len(tasks) == 0 {
		return fmt.Errorf("at least one task is required: %w", ErrNotValid)
	}

	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %d (%q): %w", i, t.Name, err)
		}
	}

	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, ErrNotValid)
	}

	return t, nil
}

// MustParseDate is like ParseDate but panics on invalid dates, use only for static data.
func MustParseDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}

	return t
}

// FormatDate formats a date using the YYYY-MM-DD layout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
