package recorder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/trytobebee/gridsnake/pkg/game"
)

func TestListAndRead(t *testing.T) {
	dir := t.TempDir()
	r, err := New(dir, "srv")
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	r.RecordSession("a", game.RoundResult{Round: 1, Score: 3, StartedAt: now, EndedAt: now.Add(time.Second)})
	r.Record(game.RoundResult{Round: 1, Score: 1})
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	// Unrelated files are ignored
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	files, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 1 || files[0].Session != "srv" {
		t.Fatalf("Unexpected files %+v", files)
	}

	entries, err := ReadFile(filepath.Join(dir, files[0].Name))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(entries) != 2 || entries[0].Session != "a" || entries[1].Session != "srv" {
		t.Errorf("Unexpected entries %+v", entries)
	}
}

func TestListMissingDir(t *testing.T) {
	files, err := List(filepath.Join(t.TempDir(), "nope"))
	if err != nil || len(files) != 0 {
		t.Errorf("Expected no files and no error, got %v, %v", files, err)
	}
}

func TestReadFileSkipsBadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds_x_1.jsonl")
	data := `{"session":"x","round":1,"score":2}
not json
{"session":"x","round":2,"score":4}
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	entries, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[1].Score != 4 {
		t.Errorf("Unexpected entries %+v", entries)
	}
}

func TestSummarize(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Session: "a", RoundResult: game.RoundResult{Round: 1, Score: 2, Length: 3, NewBest: true, StartedAt: t0, EndedAt: t0.Add(10 * time.Second)}},
		{Session: "b", RoundResult: game.RoundResult{Round: 1, Score: 5, Length: 6, StartedAt: t0, EndedAt: t0.Add(time.Minute)}},
		{Session: "a", RoundResult: game.RoundResult{Round: 2, Score: 4, Length: 5, NewBest: true, StartedAt: t0, EndedAt: t0.Add(20 * time.Second)}},
	}

	got := Summarize(entries)
	if len(got) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(got))
	}
	// b ended last, so it comes first
	if got[0].Session != "b" || got[1].Session != "a" {
		t.Fatalf("Unexpected order %+v", got)
	}

	a := got[1]
	if a.Rounds != 2 || a.Best != 4 || a.Longest != 5 || a.NewBests != 2 {
		t.Errorf("Unexpected summary %+v", a)
	}
	if a.Average != 3 {
		t.Errorf("Expected average 3, got %v", a.Average)
	}
	if a.PlayTime != 30*time.Second {
		t.Errorf("Expected 30s of play, got %v", a.PlayTime)
	}
}
