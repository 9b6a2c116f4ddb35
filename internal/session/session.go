// Package session runs an interactive quiz over a reader and writer.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/p-n-ai/pai-quiz/internal/quiz"
)

// Config holds dependencies for a session.
type Config struct {
	Questions  []quiz.Question
	In         io.Reader
	Out        io.Writer
	Events     EventLogger // defaults to NopEventLogger
	RunID      string      // generated when empty
	NoColor    bool
	ShowAnswer bool // print the correct answer after each attempt
}

// Session asks each question once, in order.
type Session struct {
	questions  []quiz.Question
	in         *bufio.Reader
	out        io.Writer
	events     EventLogger
	runID      string
	styles     styles
	showAnswer bool
}

// New creates a session.
func New(cfg Config) *Session {
	events := cfg.Events
	if events == nil {
		events = NopEventLogger{}
	}
	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	return &Session{
		questions:  cfg.Questions,
		in:         bufio.NewReader(cfg.In),
		out:        cfg.Out,
		events:     events,
		runID:      runID,
		styles:     newStyles(cfg.Out, cfg.NoColor),
		showAnswer: cfg.ShowAnswer,
	}
}

// RunID identifies this session in logs and events.
func (s *Session) RunID() string {
	return s.runID
}

// Run presents every question and reports whether each answer was correct.
// It returns nil when the input ends early and ctx.Err() as soon as ctx is
// done, including while waiting for an answer. An answer read after ctx is
// done is not checked.
func (s *Session) Run(ctx context.Context) error {
	slog.Info("session started", "run_id", s.runID, "questions", len(s.questions))
	s.logEvent(Event{EventType: EventStarted, Data: map[string]any{"questions": len(s.questions)}})

	fmt.Fprintln(s.out, "starting Questions!")

	asked := 0
	for i, q := range s.questions {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, more, err := s.ask(ctx, q)
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !more && answer == "" {
			slog.Info("input closed", "run_id", s.runID, "asked", asked)
			break
		}
		asked++

		s.check(i+1, q, answer)

		if !more {
			slog.Info("input closed", "run_id", s.runID, "asked", asked)
			break
		}
	}

	s.logEvent(Event{EventType: EventFinished, Data: map[string]any{"asked": asked}})
	return nil
}

type readResult struct {
	line string
	err  error
}

// ask prints the question and reads one line. more is false once the input
// is exhausted. The read is abandoned when ctx is done.
func (s *Session) ask(ctx context.Context, q quiz.Question) (answer string, more bool, err error) {
	fmt.Fprintln(s.out, s.styles.render(s.styles.prompt, q.QuestionText()))

	done := make(chan readResult, 1)
	go func() {
		line, err := s.in.ReadString('\n')
		done <- readResult{line: line, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case res = <-done:
	}

	switch {
	case errors.Is(res.err, io.EOF):
		return strings.TrimSpace(res.line), false, nil
	case res.err != nil:
		return "", false, fmt.Errorf("reading answer: %w", res.err)
	}
	return strings.TrimSpace(res.line), true, nil
}

func (s *Session) check(n int, q quiz.Question, answer string) {
	if s.showAnswer {
		fmt.Fprintln(s.out, s.styles.render(s.styles.answer, q.AnswerText()))
	}

	ok, err := q.CheckAnswer(answer)
	data := map[string]any{"kind": q.Kind().String()}
	switch {
	case err != nil:
		fmt.Fprintln(s.out, s.styles.render(s.styles.invalid, "invalid answer: "+err.Error()))
		data["error"] = err.Error()
	case ok:
		fmt.Fprintln(s.out, s.styles.render(s.styles.correct, "correct"))
	default:
		fmt.Fprintln(s.out, s.styles.render(s.styles.incorrect, "incorrect"))
	}
	data["correct"] = ok

	s.logEvent(Event{EventType: EventAnswerChecked, Question: n, Data: data})
}

func (s *Session) logEvent(event Event) {
	event.RunID = s.runID
	if err := s.events.LogEvent(event); err != nil {
		slog.Warn("failed to log session event", "type", event.EventType, "error", err)
	}
}
