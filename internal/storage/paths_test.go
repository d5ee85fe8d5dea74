package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testProvider struct {
	configDir string
	configErr error
	mkdirErr  error
}

func (p testProvider) UserConfigDir() (string, error) {
	return p.configDir, p.configErr
}

func (p testProvider) MkdirAll(path string, perm os.FileMode) error {
	if p.mkdirErr != nil {
		return p.mkdirErr
	}
	return os.MkdirAll(path, perm)
}

func TestAppDir(t *testing.T) {
	tmp := t.TempDir()
	SetProvider(testProvider{configDir: tmp})
	defer ResetProvider()

	dir, err := AppDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != filepath.Join(tmp, AppName) {
		t.Errorf("AppDir() = %q", dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Error("expected the directory created")
	}
}

func TestAppDir_ConfigDirError(t *testing.T) {
	SetProvider(testProvider{configErr: errors.New("no home")})
	defer ResetProvider()

	if _, err := AppDir(); err == nil {
		t.Error("expected an error")
	}
}

func TestProfileDir(t *testing.T) {
	tmp := t.TempDir()
	SetProvider(testProvider{configDir: tmp})
	defer ResetProvider()

	tests := []struct {
		name    string
		profile string
		want    string
	}{
		{"named profile", "work", filepath.Join(tmp, AppName, "work")},
		{"empty falls back", "", filepath.Join(tmp, AppName, DefaultProfile)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := ProfileDir(tt.profile)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dir != tt.want {
				t.Errorf("ProfileDir(%q) = %q, want %q", tt.profile, dir, tt.want)
			}
		})
	}
}

func TestProfileDir_MkdirError(t *testing.T) {
	SetProvider(testProvider{configDir: t.TempDir(), mkdirErr: errors.New("denied")})
	defer ResetProvider()

	if _, err := ProfileDir("work"); err == nil {
		t.Error("expected an error")
	}
}
