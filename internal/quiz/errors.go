package quiz

import (
	"errors"
	"fmt"
)

// Line-level reasons. A LoadError wraps exactly one of these.
var (
	ErrNotEnoughFields   = errors.New("not enough fields")
	ErrUnknownType       = errors.New("unknown question type")
	ErrMultipleChoiceLen = errors.New("incorrect number of fields for multiple choice")
	ErrNotEnoughChoices  = errors.New("not enough choices")
	ErrTooManyChoices    = errors.New("too many choices")
	ErrAnswerNotChoice   = errors.New("answer must be a choice")
)

// Choice codec reasons, also returned by MultipleChoice.CheckAnswer.
var (
	ErrChoiceTooLong    = errors.New("choice is too long")
	ErrNoChoice         = errors.New("must have a choice")
	ErrChoiceNotLetter  = errors.New("the correct choice must be a letter")
	ErrChoiceOutOfRange = errors.New("choice must be between a-g")
)

// LoadError reports a record that was skipped during a load.
type LoadError struct {
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Error on Line %d: %v", e.Line, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SourceError is returned when the question source cannot be opened or read.
// Nothing is loaded when it occurs.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("reading questions from %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
