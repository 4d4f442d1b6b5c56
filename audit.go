package accounts

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/rs/xid"
)

type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
)

// SlogEvents records audit events on a structured logger.
type SlogEvents struct {
	Logger *slog.Logger
}

func NewSlogEvents(logger *slog.Logger) *SlogEvents {
	return &SlogEvents{Logger: logger}
}

func (s *SlogEvents) Record(severity Severity, message string) {
	if severity == SeverityWarning {
		s.Logger.Warn(message)
		return
	}
	s.Logger.Info(message)
}

// FileEvents appends one JSON object per event to an audit log file, each
// tagged with a unique id and a UTC timestamp.
type FileEvents struct {
	mu   sync.Mutex
	path string
}

type auditEntry struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
}

func NewFileEvents(path string) *FileEvents {
	return &FileEvents{path: path}
}

// Record is best-effort: an unwritable audit log never fails the operation
// that emitted the event.
func (f *FileEvents) Record(severity Severity, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry := auditEntry{
		ID:       xid.New().String(),
		Time:     time.Now().UTC(),
		Severity: severity,
		Message:  message,
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return
	}

	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer fh.Close()
	_, _ = fh.Write(append(b, '\n'))
}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) Record(Severity, string) {}
