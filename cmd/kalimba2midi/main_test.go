package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return out.String()
}

func TestPianoCommand(t *testing.T) {
	if got := execute(t, "piano", "1", "3", "5"); got != "C4 E4 G4\n" {
		t.Errorf("piano output = %q", got)
	}
}

func TestMIDICommand(t *testing.T) {
	if got := execute(t, "midi", "1' X 3''"); got != "72 X 88\n" {
		t.Errorf("midi output = %q", got)
	}
}

func TestReverseCommand(t *testing.T) {
	if got := execute(t, "reverse", "C4 B5"); got != "1 7'\n" {
		t.Errorf("reverse output = %q", got)
	}
}

func TestTableCommand(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(execute(t, "table")), "\n")
	if len(lines) != 18 {
		t.Errorf("table printed %d lines, want 18", len(lines))
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "kalimba tabs"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "kalimba tabs", "song.txt"), []byte("1 3 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := execute(t, "--root", dir); got != "Kalimba song.txt: C4 E4 G4\n" {
		t.Errorf("batch output = %q", got)
	}
}

func TestNotesCommandMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.mid")
	got := execute(t, "notes", path)
	if !strings.Contains(got, "Error reading MIDI file "+path) {
		t.Errorf("notes output = %q", got)
	}
	if !strings.Contains(got, "MIDI "+path+": []") {
		t.Errorf("notes output = %q", got)
	}
}

func TestNotesCommandRejectsNonMIDI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.txt")
	if err := os.WriteFile(path, []byte("1 3 5"), 0644); err != nil {
		t.Fatal(err)
	}

	got := execute(t, "notes", path)
	if got != "Error reading MIDI file "+path+": not a .mid or .midi file\n" {
		t.Errorf("notes output = %q", got)
	}
}

func TestFlagScopes(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("--verbose should be a persistent flag")
	}
	for _, name := range []string{"root", "kalimba-dir", "midi-dir"} {
		if rootCmd.LocalNonPersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a local flag of the batch command", name)
		}
		if pianoCmd.Flags().Lookup(name) != nil {
			t.Errorf("--%s should not be inherited by subcommands", name)
		}
	}
}
