package recorder

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trytobebee/gridsnake/pkg/game"
)

// Entry is one line of round history
type Entry struct {
	Session string `json:"session"`
	game.RoundResult
}

// Recorder appends finished rounds to a JSONL file without blocking the game loop
type Recorder struct {
	session    string
	path       string
	file       *os.File
	writer     *bufio.Writer
	recordChan chan Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
}

// New creates a recorder writing to dir/rounds_{session}_{timestamp}.jsonl.
// An empty session gets a random ID.
func New(dir, session string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}
	if session == "" {
		session = uuid.NewString()
	}

	filename := fmt.Sprintf("rounds_%s_%d.jsonl", session, time.Now().Unix())
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &Recorder{
		session:    session,
		path:       path,
		file:       f,
		writer:     bufio.NewWriter(f),
		recordChan: make(chan Entry, 64),
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Path returns the file being written
func (r *Recorder) Path() string {
	return r.path
}

// Record queues a finished round. Drops the entry if the queue is full.
// Its signature matches game.Config.OnRoundEnd.
func (r *Recorder) Record(res game.RoundResult) {
	r.RecordSession(r.session, res)
}

// RecordSession queues a round played under another session, such as one
// browser connection of a shared server recorder
func (r *Recorder) RecordSession(session string, res game.RoundResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.recordChan <- Entry{Session: session, RoundResult: res}:
	default:
	}
}

// Close flushes what is still queued and closes the file
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.recordChan)
	r.mu.Unlock()

	r.wg.Wait()
	return r.file.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := encoder.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording round: %v\n", err)
			continue
		}
		// Rounds are rare, so flush whenever the queue is drained
		if len(r.recordChan) == 0 {
			if err := r.writer.Flush(); err != nil {
				fmt.Fprintf(os.Stderr, "Error flushing rounds: %v\n", err)
			}
		}
	}
	if err := r.writer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error flushing rounds: %v\n", err)
	}
}
