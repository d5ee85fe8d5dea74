package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/1cbyc/time-tracker/internal/storage"
)

type testPathProvider struct {
	dir string
}

func (p testPathProvider) UserConfigDir() (string, error) {
	return p.dir, nil
}

func (p testPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// setupCmdTest redirects storage and config to a throwaway directory and
// captures output and exit codes. Flags are reset so tests don't leak
// into each other.
func setupCmdTest(t *testing.T) (stdout, stderr *bytes.Buffer, exitCodes *[]int) {
	t.Helper()

	tmp := t.TempDir()
	storage.SetProvider(testPathProvider{dir: tmp})

	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	codes := []int{}
	SetDeps(&Deps{
		Stdout: stdout,
		Stderr: stderr,
		Exit:   func(code int) { codes = append(codes, code) },
		ConfigPath: func() (string, error) {
			return filepath.Join(tmp, "config.toml"), nil
		},
	})

	startProjectFlag = ""
	startOnFlag = 0
	addProjectFlag = ""
	reportDateFlag = ""
	projectColorFlag = ""
	exportFormatFlag = "csv"
	exportOutFlag = ""
	exportDateFlag = ""

	t.Cleanup(func() {
		storage.ResetProvider()
		ResetDeps()
	})
	return stdout, stderr, &codes
}

func exited(codes *[]int) bool {
	return len(*codes) > 0
}
