// Package actionlog stores admin subscription actions in an append-only
// JSON-lines file. Records are never rewritten or removed; the position of a
// record among the parseable records of the file is its log index.
package actionlog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/models"
)

// maxRecordSize bounds a single journal line when reading
const maxRecordSize = 1 << 20

// Journal is the admin action log
type Journal interface {
	Append(entry models.AdminAction) error
	ReadAll() ([]models.AdminAction, error)
	ReadLast() (*models.AdminAction, error)
}

// FileJournal is a Journal backed by a single file.
// Appends are serialised through one writer lock, which keeps log indexes
// stable between reads within a process.
type FileJournal struct {
	path   string
	logger zerolog.Logger
	mu     sync.Mutex
}

// NewFileJournal creates a journal at path. The file is created on first append.
func NewFileJournal(path string, logger zerolog.Logger) *FileJournal {
	return &FileJournal{
		path:   path,
		logger: logger.With().Str("component", "actionlog").Logger(),
	}
}

// Path returns the journal file location
func (j *FileJournal) Path() string {
	return j.path
}

// Append writes entry as one line at the end of the journal
func (j *FileJournal) Append(entry models.AdminAction) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode admin action: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if dir := filepath.Dir(j.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	f, err := os.OpenFile(j.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	// A previous write may have been cut short. Start a fresh line so the
	// new record does not merge into the broken one.
	terminated, err := endsWithNewline(f)
	if err != nil {
		return fmt.Errorf("failed to inspect journal tail: %w", err)
	}

	line := make([]byte, 0, len(data)+2)
	if !terminated {
		line = append(line, '\n')
	}
	line = append(line, data...)
	line = append(line, '\n')

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("failed to write journal record: %w", err)
	}

	return f.Sync()
}

// ReadAll loads every parseable record in file order. A missing file is an
// empty journal. Lines that fail to parse are skipped and do not consume an index.
func (j *FileJournal) ReadAll() ([]models.AdminAction, error) {
	f, err := os.Open(j.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.AdminAction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	return j.decode(f)
}

// ReadLast returns the most recent record, or nil when the journal is empty
func (j *FileJournal) ReadLast() (*models.AdminAction, error) {
	entries, err := j.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	last := entries[len(entries)-1]
	return &last, nil
}

func (j *FileJournal) decode(r io.Reader) ([]models.AdminAction, error) {
	reader := bufio.NewReader(r)
	entries := []models.AdminAction{}
	lineNo := 0

	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			lineNo++
			if entry, ok := j.parseLine(line, lineNo); ok {
				entry.LogIndex = len(entries)
				entries = append(entries, entry)
			}
		}
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read journal: %w", err)
		}
	}
}

func (j *FileJournal) parseLine(line []byte, lineNo int) (models.AdminAction, bool) {
	var entry models.AdminAction

	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return entry, false
	}
	if len(trimmed) > maxRecordSize {
		j.logger.Warn().Int("line", lineNo).Int("bytes", len(trimmed)).Msg("Skipping oversized journal record")
		return entry, false
	}

	if err := json.Unmarshal(trimmed, &entry); err != nil {
		j.logger.Warn().Err(err).Int("line", lineNo).Msg("Skipping unparseable journal record")
		return entry, false
	}
	if !entry.Action.Known() {
		j.logger.Warn().Int("line", lineNo).Str("action", string(entry.Action)).Msg("Skipping journal record with unknown action")
		return entry, false
	}

	return entry, true
}

// endsWithNewline reports whether the file is empty or its last byte is '\n'
func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}
