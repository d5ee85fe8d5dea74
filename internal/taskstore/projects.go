package taskstore

import (
	"fmt"
	"strings"

	"github.com/1cbyc/time-tracker/internal/task"
)

// ProjectRepository is the persistence collaborator for projects.
type ProjectRepository interface {
	Restore(defaultValue []task.Project) []task.Project
	Save(data []task.Project)
}

// ProjectStore holds the project labels referenced by tasks. Projects
// are opaque to the timer engine; this store only exists so tasks can be
// grouped and colored.
type ProjectStore struct {
	repo     ProjectRepository
	projects []*task.Project
	byKey    map[string]*task.Project
}

// NewProjectStore restores the project collection from the repository.
func NewProjectStore(repo ProjectRepository) *ProjectStore {
	s := &ProjectStore{
		repo:  repo,
		byKey: make(map[string]*task.Project),
	}
	for _, p := range repo.Restore([]task.Project{}) {
		c := p
		s.projects = append(s.projects, &c)
		s.byKey[c.Key] = &c
	}
	return s
}

// Projects returns the project collection in insertion order.
func (s *ProjectStore) Projects() []*task.Project {
	return s.projects
}

// Get returns the project with the given key, or nil.
func (s *ProjectStore) Get(key string) *task.Project {
	return s.byKey[key]
}

// Map returns a key-indexed view of the projects for display joins.
func (s *ProjectStore) Map() map[string]*task.Project {
	return s.byKey
}

// FindByTitle returns the project with the given title
// (case-insensitive), or nil.
func (s *ProjectStore) FindByTitle(title string) *task.Project {
	for _, p := range s.projects {
		if strings.EqualFold(p.Title, title) {
			return p
		}
	}
	return nil
}

// Add inserts a new project and saves the collection.
func (s *ProjectStore) Add(p *task.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := s.byKey[p.Key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, p.Key)
	}
	s.projects = append(s.projects, p)
	s.byKey[p.Key] = p
	snapshot := make([]task.Project, len(s.projects))
	for i, cur := range s.projects {
		snapshot[i] = *cur
	}
	s.repo.Save(snapshot)
	return nil
}
