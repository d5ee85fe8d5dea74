package storage

import (
	"os"
	"sync"
)

// writeQueue serializes writes to a single file. Snapshots are written in
// submission order, one write in flight at a time; a failed write is
// reported and does not block later writes.
type writeQueue struct {
	path    string
	onError func(error)

	mu      sync.Mutex
	cond    *sync.Cond
	pending [][]byte
	running bool
}

func newWriteQueue(path string, onError func(error)) *writeQueue {
	q := &writeQueue{path: path, onError: onError}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// enqueue adds a snapshot to the queue and starts the drain goroutine if
// one is not already running.
func (q *writeQueue) enqueue(data []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, data)
	if !q.running {
		q.running = true
		go q.drain()
	}
}

func (q *writeQueue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.running = false
			q.cond.Broadcast()
			q.mu.Unlock()
			return
		}
		data := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		if err := writeFileAtomic(q.path, data); err != nil && q.onError != nil {
			q.onError(err)
		}
	}
}

// flush blocks until every snapshot enqueued so far has been attempted.
func (q *writeQueue) flush() {
	q.mu.Lock()
	for q.running || len(q.pending) > 0 {
		q.cond.Wait()
	}
	q.mu.Unlock()
}

// writeFileAtomic writes data to a temporary file and renames it into
// place so a crash mid-write never leaves a truncated document.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
