package task

import "github.com/google/uuid"

// Project is a grouping label referenced by tasks through ProjectID.
// Its lifecycle is independent of the timer engine.
type Project struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
}

// NewProject creates a project with a fresh key.
func NewProject(title, color string) *Project {
	return &Project{
		Key:   uuid.NewString(),
		Title: title,
		Color: color,
	}
}
