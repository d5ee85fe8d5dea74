package taskstore

import "errors"

var (
	// ErrNotFound is returned when no task with the given key exists.
	ErrNotFound = errors.New("task not found")
	// ErrDuplicateKey is returned when adding a task whose key is taken.
	ErrDuplicateKey = errors.New("task key already exists")
	// ErrNoTimerRunning is returned by StopTimer when no task is active.
	ErrNoTimerRunning = errors.New("no timer is running")
	// ErrIndexOutOfRange is returned for an invalid time-entry index.
	ErrIndexOutOfRange = errors.New("time entry index out of range")
)
