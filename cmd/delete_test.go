package cmd

import (
	"strings"
	"testing"
)

func TestDeleteEntry(t *testing.T) {
	stdout, stderr, codes := setupCmdTest(t)

	startTimer([]string{"task"})
	stopTimer()
	stdout.Reset()

	deleteEntry("1")

	if exited(codes) {
		t.Fatalf("unexpected exit, stderr: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Deleted:") {
		t.Errorf("expected delete confirmation, got: %s", stdout.String())
	}
	if strings.Contains(stdout.String(), "timer was stopped") {
		t.Errorf("closed entry must not report a stop, got: %s", stdout.String())
	}
}

func TestDeleteEntry_RunningEntryStopsTimer(t *testing.T) {
	stdout, _, codes := setupCmdTest(t)

	startTimer([]string{"task"})
	stdout.Reset()

	deleteEntry("1")

	if exited(codes) {
		t.Fatal("unexpected exit")
	}
	if !strings.Contains(stdout.String(), "(The running timer was stopped)") {
		t.Errorf("expected the implicit stop reported, got: %s", stdout.String())
	}

	stdout.Reset()
	showStatus()
	if !strings.Contains(stdout.String(), "No timer running") {
		t.Errorf("expected no timer after deleting the open entry, got: %s", stdout.String())
	}
}

func TestDeleteEntry_InvalidNumber(t *testing.T) {
	_, stderr, codes := setupCmdTest(t)

	deleteEntry("zero")

	if !exited(codes) {
		t.Error("expected exit for an invalid number")
	}
	if !strings.Contains(stderr.String(), `Invalid entry number "zero"`) {
		t.Errorf("expected invalid number error, got: %s", stderr.String())
	}
}

func TestDeleteEntry_OutOfRange(t *testing.T) {
	_, stderr, codes := setupCmdTest(t)

	deleteEntry("2")

	if !exited(codes) {
		t.Error("expected exit for an out-of-range entry")
	}
	if !strings.Contains(stderr.String(), "Entry 2 is out of range") {
		t.Errorf("expected out-of-range error, got: %s", stderr.String())
	}
}
