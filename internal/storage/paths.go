// Package storage persists JSON documents under a profile-scoped data
// directory. Reads are synchronous with corrupt-file recovery; writes go
// through a per-file serialized queue so rapid mutation bursts never
// interleave partial writes.
package storage

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application name used for the data directory.
	AppName = "time-tracker"
	// TasksFile is the name of the tasks document within a profile.
	TasksFile = "tasks.json"
	// ProjectsFile is the name of the projects document within a profile.
	ProjectsFile = "projects.json"
	// DefaultProfile is the profile used when the config names none.
	DefaultProfile = "profile1"
)

// PathProvider abstracts OS-level path resolution so tests can exercise
// error paths.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider uses the real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider restores the default provider (for testing cleanup).
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// AppDir returns the application data directory, creating it if needed.
func AppDir() (string, error) {
	configDir, err := Provider.UserConfigDir()
	if err != nil {
		return "", err
	}
	appDir := filepath.Join(configDir, AppName)
	if err := Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return appDir, nil
}

// ProfileDir returns the data directory for the given profile, creating
// it if needed. An empty profile falls back to DefaultProfile.
func ProfileDir(profile string) (string, error) {
	if profile == "" {
		profile = DefaultProfile
	}
	appDir, err := AppDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(appDir, profile)
	if err := Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
