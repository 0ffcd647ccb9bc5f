package repl

import (
	"bufio"
	"os"
	"path/filepath"
)

// defaultMaxHistory bounds the in-memory history; oldest entries are
// evicted first.
const defaultMaxHistory = 1000

// History manages command history for the REPL. Persistence is strictly
// best-effort: callers discard Load/Save errors so a read-only home
// directory never disturbs a session.
type History struct {
	entries []string
	maxSize int
	file    string
}

// DefaultHistoryFile returns the history path under the user's home
// directory.
func DefaultHistoryFile() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".triedis", "history")
}

// NewHistory creates a History persisted at the given file path.
func NewHistory(file string) *History {
	if file == "" {
		file = DefaultHistoryFile()
	}
	return &History{
		entries: make([]string, 0),
		maxSize: defaultMaxHistory,
		file:    file,
	}
}

// Add appends a command, evicting the oldest entry past the size bound.
func (h *History) Add(cmd string) {
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[1:]
	}
}

// Get returns the history entry at index (0 = most recent).
func (h *History) Get(index int) string {
	if index < 0 || index >= len(h.entries) {
		return ""
	}
	return h.entries[len(h.entries)-1-index]
}

// Entries returns all entries, oldest first.
func (h *History) Entries() []string {
	return h.entries
}

// Load reads history from the file. A missing file is not an error.
func (h *History) Load() error {
	file, err := os.Open(h.file)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		h.entries = append(h.entries, scanner.Text())
	}
	return scanner.Err()
}

// Save writes history back to the file, creating the parent directory.
func (h *History) Save() error {
	dir := filepath.Dir(h.file)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	file, err := os.Create(h.file)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, entry := range h.entries {
		if _, err := file.WriteString(entry + "\n"); err != nil {
			return err
		}
	}
	return nil
}
