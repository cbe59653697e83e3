package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindTranscriptFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := FindTranscriptFiles(dir)
	if err != nil {
		t.Fatalf("FindTranscriptFiles: %v", err)
	}
	want := []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}
	if len(got) != len(want) {
		t.Fatalf("%d fichiers; want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fichier %d = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestFindTranscriptFilesMissingDir(t *testing.T) {
	// dossier absent : pas d'erreur, liste vide
	got, err := FindTranscriptFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("FindTranscriptFiles: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("%d fichiers; want 0", len(got))
	}
}
