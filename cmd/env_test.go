package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1cbyc/time-tracker/internal/storage"
)

func TestOpenEnv_FreshDirectory(t *testing.T) {
	setupCmdTest(t)

	e, err := openEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.store.Len() != 0 {
		t.Errorf("expected an empty store, got %d tasks", e.store.Len())
	}
	if len(e.projects.Projects()) != 0 {
		t.Errorf("expected no projects, got %d", len(e.projects.Projects()))
	}
}

func TestOpenEnv_CorruptTasksFileRecovers(t *testing.T) {
	stdout, stderr, _ := setupCmdTest(t)

	// Create a valid task first so there is a real file to corrupt.
	startTimer([]string{"task"})
	stopTimer()
	stdout.Reset()

	dir, err := storage.ProfileDir("profile1")
	if err != nil {
		t.Fatal(err)
	}
	tasksPath := filepath.Join(dir, storage.TasksFile)
	if err := os.WriteFile(tasksPath, []byte("{corrupt"), 0644); err != nil {
		t.Fatal(err)
	}

	e, err := openEnv()
	if err != nil {
		t.Fatalf("a corrupt file must not fail the command: %v", err)
	}
	if e.store.Len() != 0 {
		t.Errorf("expected an empty store after corruption, got %d tasks", e.store.Len())
	}
	if !strings.Contains(stderr.String(), "Warning: storage:") {
		t.Errorf("expected a storage warning, got: %s", stderr.String())
	}

	// The corrupt file was preserved under a timestamped name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".corrupted.") {
			found = true
		}
	}
	if !found {
		t.Error("expected a .corrupted backup of the unparseable file")
	}
}
