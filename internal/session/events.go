package session

import (
	"fmt"
	"log/slog"
	"time"
)

// Event types emitted by a session.
const (
	EventStarted       = "session_started"
	EventAnswerChecked = "answer_checked"
	EventFinished      = "session_finished"
)

// Event records something that happened during a run.
type Event struct {
	RunID     string
	EventType string
	Question  int // 1-based, zero for session-level events
	Data      map[string]any
	CreatedAt time.Time
}

// EventLogger defines event logging behavior.
type EventLogger interface {
	LogEvent(event Event) error
}

// NopEventLogger ignores all events.
type NopEventLogger struct{}

func (NopEventLogger) LogEvent(Event) error {
	return nil
}

// SlogEventLogger writes events to a structured logger at debug level.
type SlogEventLogger struct {
	logger *slog.Logger
}

// NewSlogEventLogger uses slog.Default() when logger is nil.
func NewSlogEventLogger(logger *slog.Logger) *SlogEventLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogEventLogger{logger: logger}
}

func (l *SlogEventLogger) LogEvent(event Event) error {
	if event.EventType == "" {
		return fmt.Errorf("event_type is required")
	}

	attrs := []any{
		"type", event.EventType,
		"run_id", event.RunID,
	}
	if event.Question > 0 {
		attrs = append(attrs, "question", event.Question)
	}
	for k, v := range event.Data {
		attrs = append(attrs, k, v)
	}

	l.logger.Debug("session event", attrs...)
	return nil
}
