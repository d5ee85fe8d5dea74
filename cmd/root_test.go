package cmd

import (
	"strings"
	"testing"
)

func TestListToday_Empty(t *testing.T) {
	stdout, _, _ := setupCmdTest(t)

	listToday()

	if !strings.Contains(stdout.String(), "No time entries for today") {
		t.Errorf("expected empty message, got: %s", stdout.String())
	}
}

func TestListToday_WithEntries(t *testing.T) {
	stdout, stderr, codes := setupCmdTest(t)

	startTimer([]string{"first"})
	stopTimer()
	startTimer([]string{"second"})
	stdout.Reset()

	listToday()

	if exited(codes) {
		t.Fatalf("unexpected exit, stderr: %s", stderr.String())
	}
	output := stdout.String()
	if !strings.Contains(output, "[1]") || !strings.Contains(output, "[2]") {
		t.Errorf("expected numbered entries, got: %s", output)
	}
	if !strings.Contains(output, "first") || !strings.Contains(output, "second") {
		t.Errorf("expected both entries, got: %s", output)
	}
	if !strings.Contains(output, "running...") {
		t.Errorf("expected the open entry marked running, got: %s", output)
	}
	if !strings.Contains(output, "Total:") {
		t.Errorf("expected a day total, got: %s", output)
	}
}

func TestListToday_PersistsAcrossInvocations(t *testing.T) {
	stdout, _, _ := setupCmdTest(t)

	// Two separate command invocations share the profile directory, so
	// the second one sees what the first one wrote.
	startTimer([]string{"persisted"})
	stopTimer()
	stdout.Reset()

	listToday()

	if !strings.Contains(stdout.String(), "persisted") {
		t.Errorf("expected the entry reloaded from disk, got: %s", stdout.String())
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-03-10")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("Version = %q", rootCmd.Version)
	}
}
