package game

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lox/drawpoker/internal/fileutil"
)

// HistoryWriter stores the transcript of a finished session
type HistoryWriter interface {
	WriteHistory(sessionID string, content string) error
}

// FileHistoryWriter writes one transcript file per session
type FileHistoryWriter struct {
	directory string
}

// NewFileHistoryWriter creates a writer that saves into directory
func NewFileHistoryWriter(directory string) *FileHistoryWriter {
	return &FileHistoryWriter{directory: directory}
}

// WriteHistory writes the transcript to session_<id>.txt
func (w *FileHistoryWriter) WriteHistory(sessionID string, content string) error {
	if err := fileutil.EnsureDir(w.directory); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	filename := filepath.Join(w.directory, fmt.Sprintf("session_%s.txt", sessionID))
	if err := fileutil.WriteFileAtomic(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// NoOpHistoryWriter discards transcripts
type NoOpHistoryWriter struct{}

// WriteHistory does nothing
func (w *NoOpHistoryWriter) WriteHistory(string, string) error { return nil }

// FormatHistory renders a plain-text transcript of the session so far
func FormatHistory(s *Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Session %s\n", s.id)
	fmt.Fprintf(&b, "Started: %s\n", s.started.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Jokers: %d, exchange rounds: %d\n\n", s.settings.Jokers, s.settings.Exchanges)

	for _, e := range s.history {
		offset := e.Time.Sub(s.started).Round(time.Millisecond)
		switch e.Kind {
		case EventExchanged:
			fmt.Fprintf(&b, "+%s %s cards %s: %s %s\n", offset, e.Kind, FormatSelection(e.Positions), e.Hand, e.Category)
		default:
			fmt.Fprintf(&b, "+%s %s: %s %s\n", offset, e.Kind, e.Hand, e.Category)
		}
	}

	if s.over {
		fmt.Fprintf(&b, "\nFinal: %s %s after %d exchange(s)\n", s.hand, s.Category(), s.roundsUsed)
	}
	return b.String()
}
