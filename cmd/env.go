package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/1cbyc/time-tracker/internal/config"
	"github.com/1cbyc/time-tracker/internal/storage"
	"github.com/1cbyc/time-tracker/internal/task"
	"github.com/1cbyc/time-tracker/internal/taskstore"
)

// env wires the config, repositories, and stores for one command
// invocation.
type env struct {
	cfg          config.Config
	store        *taskstore.Store
	projects     *taskstore.ProjectStore
	tasksRepo    *storage.Repository[[]task.Task]
	projectsRepo *storage.Repository[[]task.Project]
}

// openEnv loads the config and restores both stores from the profile's
// data directory. Asynchronous save failures are reported to stderr.
func openEnv() (*env, error) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dataDir, err := storage.ProfileDir(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("resolve profile directory: %w", err)
	}

	onError := func(err error) {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: storage: %v\n", err)
	}

	tasksRepo := storage.NewRepository[[]task.Task](filepath.Join(dataDir, storage.TasksFile), onError)
	projectsRepo := storage.NewRepository[[]task.Project](filepath.Join(dataDir, storage.ProjectsFile), onError)

	return &env{
		cfg:          cfg,
		store:        taskstore.New(tasksRepo),
		projects:     taskstore.NewProjectStore(projectsRepo),
		tasksRepo:    tasksRepo,
		projectsRepo: projectsRepo,
	}, nil
}

// flush waits for pending writes before the process exits. The engine's
// saves are fire-and-forget; a short-lived CLI process has to drain the
// queue or the last write would be lost.
func (e *env) flush() {
	e.tasksRepo.Flush()
	e.projectsRepo.Flush()
}

// projectTitle resolves a task's project title for display, or "".
func (e *env) projectTitle(projectID string) string {
	if p := e.projects.Get(projectID); p != nil {
		return p.Title
	}
	return ""
}

// failEnv reports an environment setup failure in the house style.
func failEnv(err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open the time tracker data")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
	deps.Exit(1)
}
