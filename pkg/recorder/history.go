package recorder

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// File describes one history file on disk
type File struct {
	Name    string
	Session string
	Size    int64
	Time    time.Time
}

// List returns the history files in dir, newest first. A missing dir is empty.
func List(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read records dir: %w", err)
	}

	var files []File
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".jsonl" || !strings.HasPrefix(e.Name(), "rounds_") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		// rounds_{session}_{timestamp}.jsonl
		parts := strings.Split(strings.TrimSuffix(e.Name(), ".jsonl"), "_")
		session := ""
		if len(parts) >= 3 {
			session = strings.Join(parts[1:len(parts)-1], "_")
		}
		files = append(files, File{
			Name:    e.Name(),
			Session: session,
			Size:    info.Size(),
			Time:    info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Time.After(files[j].Time)
	})
	return files, nil
}

// ReadFile parses every entry in a history file. Malformed lines are skipped.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			log.Printf("skipping bad line in %s: %v", path, err)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("failed to read record: %w", err)
	}
	return entries, nil
}

// Summary aggregates the rounds of one session
type Summary struct {
	Session   string
	Rounds    int
	Best      int
	Average   float64
	Longest   int
	NewBests  int
	PlayTime  time.Duration
	LastEnded time.Time
}

// Summarize groups entries by session, most recently active first
func Summarize(entries []Entry) []Summary {
	bySession := make(map[string]*Summary)
	totals := make(map[string]int)
	var order []string

	for _, e := range entries {
		s, ok := bySession[e.Session]
		if !ok {
			s = &Summary{Session: e.Session}
			bySession[e.Session] = s
			order = append(order, e.Session)
		}
		s.Rounds++
		totals[e.Session] += e.Score
		if e.Score > s.Best {
			s.Best = e.Score
		}
		if e.Length > s.Longest {
			s.Longest = e.Length
		}
		if e.NewBest {
			s.NewBests++
		}
		if !e.StartedAt.IsZero() && e.EndedAt.After(e.StartedAt) {
			s.PlayTime += e.EndedAt.Sub(e.StartedAt)
		}
		if e.EndedAt.After(s.LastEnded) {
			s.LastEnded = e.EndedAt
		}
	}

	out := make([]Summary, 0, len(order))
	for _, id := range order {
		s := bySession[id]
		s.Average = float64(totals[id]) / float64(s.Rounds)
		out = append(out, *s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastEnded.After(out[j].LastEnded)
	})
	return out
}
