package task

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxTitleLen is the maximum task title length after trimming.
	MaxTitleLen = 500
	// MaxProjectTitleLen is the maximum project title length after trimming.
	MaxProjectTitleLen = 200
	// MaxRangeDescriptionLen is the maximum time-entry description length.
	MaxRangeDescriptionLen = 1000
)

var hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// ValidationError carries the full list of human-readable validation
// messages for a rejected mutation. The store never applies a mutation
// that fails validation.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0]
	}
	return fmt.Sprintf("%d validation errors: %s", len(e.Errors), strings.Join(e.Errors, "; "))
}

// check wraps a message list into a *ValidationError, or nil when empty.
func check(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

// ValidateTitle validates a task title: required, 1-500 chars after trimming.
func ValidateTitle(title string) []string {
	trimmed := strings.TrimSpace(title)
	switch {
	case trimmed == "":
		return []string{"task title cannot be empty"}
	case len(trimmed) > MaxTitleLen:
		return []string{fmt.Sprintf("task title must be %d characters or less", MaxTitleLen)}
	}
	return nil
}

// ValidateTimeRange validates a single time range.
func ValidateTimeRange(r TimeRange) []string {
	var errs []string
	if r.Start.IsZero() {
		errs = append(errs, "start time is required")
	}
	if r.End != nil && !r.Start.IsZero() && r.End.Before(r.Start) {
		errs = append(errs, "end time must not be before start time")
	}
	if len(r.Description) > MaxRangeDescriptionLen {
		errs = append(errs, fmt.Sprintf("time entry description must be %d characters or less", MaxRangeDescriptionLen))
	}
	return errs
}

// Validate validates the whole task and returns nil or a *ValidationError
// listing every problem found.
func (t *Task) Validate() error {
	errs := ValidateTitle(t.Title)
	if t.ProjectID != "" && strings.TrimSpace(t.ProjectID) == "" {
		errs = append(errs, "project ID cannot be blank if provided")
	}
	for i, r := range t.Time {
		for _, msg := range ValidateTimeRange(r) {
			errs = append(errs, fmt.Sprintf("time entry %d: %s", i+1, msg))
		}
	}
	return check(errs)
}

// ValidateColor validates an optional hex color like #FF5733.
func ValidateColor(color string) []string {
	if color == "" {
		return nil
	}
	if !hexColorPattern.MatchString(color) {
		return []string{"color must be a valid hex color (e.g. #FF5733)"}
	}
	return nil
}

// Validate validates the project and returns nil or a *ValidationError.
func (p *Project) Validate() error {
	var errs []string
	trimmed := strings.TrimSpace(p.Title)
	switch {
	case trimmed == "":
		errs = append(errs, "project title cannot be empty")
	case len(trimmed) > MaxProjectTitleLen:
		errs = append(errs, fmt.Sprintf("project title must be %d characters or less", MaxProjectTitleLen))
	}
	if strings.TrimSpace(p.Key) == "" {
		errs = append(errs, "project key is required")
	}
	errs = append(errs, ValidateColor(p.Color)...)
	return check(errs)
}
