package quiz

import (
	"fmt"
	"io"
	"log/slog"
)

// Result is the outcome of parsing a source. Both slices keep source order.
type Result struct {
	Questions []Question
	Errors    []*LoadError
}

// Diagnostics renders one message per skipped record.
func (r Result) Diagnostics() []string {
	out := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		out[i] = err.Error()
	}
	return out
}

// Load parses lines with the default classifier.
func Load(lines []string) Result {
	return parse(Classifier{}, lines)
}

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	// CommentPrefix marks comment lines. Empty means only blank lines are skipped.
	CommentPrefix string
	// Sheet selects the worksheet of .xlsx sources. Empty means the first sheet.
	Sheet string
	// Diagnostics receives one line per skipped record. Nil discards them.
	Diagnostics io.Writer
}

// Loader reads question sources.
type Loader struct {
	classifier  Classifier
	sheet       string
	diagnostics io.Writer
}

// NewLoader creates a loader.
func NewLoader(cfg LoaderConfig) *Loader {
	diag := cfg.Diagnostics
	if diag == nil {
		diag = io.Discard
	}
	return &Loader{
		classifier:  Classifier{CommentPrefix: cfg.CommentPrefix},
		sheet:       cfg.Sheet,
		diagnostics: diag,
	}
}

// Parse parses lines using the loader's classifier.
func (l *Loader) Parse(lines []string) Result {
	return parse(l.classifier, lines)
}

// LoadFile reads and parses a question file. Skipped records are reported to
// the diagnostics writer; only a source that cannot be read is an error.
func (l *Loader) LoadFile(path string) ([]Question, error) {
	res, err := l.LoadResult(path)
	if err != nil {
		return nil, err
	}
	return res.Questions, nil
}

// LoadResult is LoadFile but also returns the skipped records.
func (l *Loader) LoadResult(path string) (Result, error) {
	lines, err := readSource(path, l.sheet)
	if err != nil {
		return Result{}, &SourceError{Path: path, Err: err}
	}

	res := l.Parse(lines)
	for _, lerr := range res.Errors {
		slog.Warn("skipping invalid question", "path", path, "line", lerr.Line, "error", lerr.Err)
		fmt.Fprintln(l.diagnostics, lerr.Error())
	}

	slog.Info("questions loaded", "path", path, "questions", len(res.Questions), "skipped", len(res.Errors))
	return res, nil
}

func parse(c Classifier, lines []string) Result {
	res := Result{
		Questions: []Question{},
		Errors:    []*LoadError{},
	}
	for i, line := range lines {
		if c.Skip(line) {
			continue
		}

		q, err := build(Tokenize(line))
		if err != nil {
			res.Errors = append(res.Errors, &LoadError{Line: i + 1, Err: err})
			continue
		}
		res.Questions = append(res.Questions, q)
	}
	return res
}
