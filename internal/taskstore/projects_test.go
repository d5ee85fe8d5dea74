package taskstore

import (
	"errors"
	"testing"

	"github.com/1cbyc/time-tracker/internal/task"
)

type fakeProjectRepo struct {
	restored []task.Project
	saves    [][]task.Project
}

func (r *fakeProjectRepo) Restore(defaultValue []task.Project) []task.Project {
	if r.restored == nil {
		return defaultValue
	}
	return r.restored
}

func (r *fakeProjectRepo) Save(data []task.Project) {
	r.saves = append(r.saves, data)
}

func TestProjectStore_Add(t *testing.T) {
	repo := &fakeProjectRepo{}
	s := NewProjectStore(repo)

	p := task.NewProject("Client Work", "#FF5733")
	if err := s.Add(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Projects()) != 1 {
		t.Errorf("expected 1 project, got %d", len(s.Projects()))
	}
	if len(repo.saves) != 1 {
		t.Errorf("expected 1 save, got %d", len(repo.saves))
	}
	if got := s.Get(p.Key); got == nil || got.Title != "Client Work" {
		t.Errorf("Get(%q) = %v", p.Key, got)
	}
}

func TestProjectStore_Add_Duplicate(t *testing.T) {
	repo := &fakeProjectRepo{}
	s := NewProjectStore(repo)

	p := task.NewProject("Client", "")
	_ = s.Add(p)

	dup := &task.Project{Key: p.Key, Title: "Other"}
	if err := s.Add(dup); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestProjectStore_Add_Invalid(t *testing.T) {
	repo := &fakeProjectRepo{}
	s := NewProjectStore(repo)

	err := s.Add(&task.Project{Key: "p1", Title: "Client", Color: "not-a-color"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if len(s.Projects()) != 0 {
		t.Error("invalid project must not be stored")
	}
}

func TestProjectStore_FindByTitle(t *testing.T) {
	repo := &fakeProjectRepo{restored: []task.Project{
		{Key: "p1", Title: "Client Work"},
		{Key: "p2", Title: "Internal"},
	}}
	s := NewProjectStore(repo)

	tests := []struct {
		title   string
		wantKey string
	}{
		{"Client Work", "p1"},
		{"client work", "p1"},
		{"INTERNAL", "p2"},
		{"missing", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := s.FindByTitle(tt.title)
			if tt.wantKey == "" {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if got == nil || got.Key != tt.wantKey {
				t.Errorf("FindByTitle(%q) = %v, want key %q", tt.title, got, tt.wantKey)
			}
		})
	}
}

func TestProjectStore_RestoreKeepsOrder(t *testing.T) {
	repo := &fakeProjectRepo{restored: []task.Project{
		{Key: "p2", Title: "Second"},
		{Key: "p1", Title: "First"},
	}}
	s := NewProjectStore(repo)

	got := s.Projects()
	if len(got) != 2 || got[0].Key != "p2" || got[1].Key != "p1" {
		t.Errorf("expected insertion order preserved, got %v", got)
	}
}
