package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Repository persists one JSON document of type T at a fixed path.
//
// Restore is synchronous; Save captures a snapshot at call time and
// returns immediately, with the write executed on the serialized queue.
type Repository[T any] struct {
	path    string
	queue   *writeQueue
	onError func(error)
}

// NewRepository creates a repository for the document at path. onError
// receives asynchronous write failures and marshal errors; it may be nil.
func NewRepository[T any](path string, onError func(error)) *Repository[T] {
	return &Repository[T]{
		path:    path,
		queue:   newWriteQueue(path, onError),
		onError: onError,
	}
}

// Path returns the document path.
func (r *Repository[T]) Path() string {
	return r.path
}

// Restore reads the document, returning defaultValue when the file does
// not exist. A file that exists but cannot be parsed is preserved under a
// timestamped .corrupted name and defaultValue is returned; the caller
// treats this as "no prior data", not an error.
func (r *Repository[T]) Restore(defaultValue T) T {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) && r.onError != nil {
			r.onError(fmt.Errorf("read %s: %w", r.path, err))
		}
		return defaultValue
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		if backupErr := r.backupCorrupted(); backupErr != nil && r.onError != nil {
			r.onError(fmt.Errorf("backup corrupted %s: %w", r.path, backupErr))
		}
		if r.onError != nil {
			r.onError(fmt.Errorf("parse %s: %w", r.path, err))
		}
		return defaultValue
	}
	return v
}

// Save marshals data now and enqueues the snapshot for a serialized,
// atomic write. It never blocks on the filesystem.
func (r *Repository[T]) Save(data T) {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		if r.onError != nil {
			r.onError(fmt.Errorf("marshal %s: %w", r.path, err))
		}
		return
	}
	r.queue.enqueue(buf)
}

// Flush blocks until all pending writes have been attempted. Used on
// shutdown and in tests.
func (r *Repository[T]) Flush() {
	r.queue.flush()
}

// backupCorrupted copies the current file aside before it is replaced,
// so a parse failure never destroys user data.
func (r *Repository[T]) backupCorrupted() error {
	backupPath := fmt.Sprintf("%s.corrupted.%d", r.path, time.Now().UnixMilli())

	src, err := os.Open(r.path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(backupPath)
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()

	_, err = io.Copy(dst, src)
	return err
}
