package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/p-n-ai/pai-quiz/internal/platform/config"
	"github.com/p-n-ai/pai-quiz/internal/quiz"
	"github.com/p-n-ai/pai-quiz/internal/session"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("quiz", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to a YAML config file (default $QUIZ_CONFIG)")
	file := fs.String("file", "", "Question file, .txt or .xlsx (default $QUIZ_FILE)")
	check := fs.Bool("check", false, "Validate the question file and exit")
	export := fs.Bool("export", false, "Write the parsed questions to stdout as YAML and exit")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitError
	}
	if *file != "" {
		cfg.Quiz.File = *file
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return exitError
	}

	slog.SetDefault(newLogger(cfg.Log, stderr))

	loader := quiz.NewLoader(quiz.LoaderConfig{
		CommentPrefix: cfg.Quiz.CommentPrefix,
		Sheet:         cfg.Quiz.Sheet,
		Diagnostics:   stderr,
	})
	res, err := loader.LoadResult(cfg.Quiz.File)
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		fmt.Fprintln(stderr, err)
		return exitError
	}

	switch {
	case *check:
		fmt.Fprintf(stdout, "%d questions, %d skipped\n", len(res.Questions), len(res.Errors))
		if len(res.Errors) > 0 {
			return exitError
		}
		return exitOK
	case *export:
		if err := quiz.WriteYAML(stdout, res.Questions); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
		return exitOK
	}

	noColor := true
	if useColor, err := session.UseColor(cfg.UI.Mode, stdout); err == nil {
		noColor = !useColor
	}

	// Interrupts end the run, even while waiting for an answer.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	s := session.New(session.Config{
		Questions:  res.Questions,
		In:         stdin,
		Out:        stdout,
		Events:     session.NewSlogEventLogger(nil),
		NoColor:    noColor,
		ShowAnswer: cfg.AnswerShown(),
	})
	if err := s.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("session interrupted", "run_id", s.RunID())
			return exitOK
		}
		slog.Error("session failed", "run_id", s.RunID(), "error", err)
		fmt.Fprintln(stderr, err)
		return exitError
	}
	return exitOK
}

// newLogger builds the process logger from config. Validate has already
// checked the level and format.
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
