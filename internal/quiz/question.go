// Package quiz parses pipe-delimited question files into typed questions.
package quiz

import (
	"fmt"
	"strings"
)

// Kind identifies a question variant.
type Kind int

const (
	KindShortAnswer Kind = iota
	KindMultipleChoice
)

func (k Kind) String() string {
	switch k {
	case KindShortAnswer:
		return "short_answer"
	case KindMultipleChoice:
		return "multiple_choice"
	default:
		return "unknown"
	}
}

// Question is implemented by *ShortAnswer and *MultipleChoice only.
type Question interface {
	Kind() Kind
	// QuestionText is what gets shown to the user.
	QuestionText() string
	// AnswerText renders the correct answer for display.
	AnswerText() string
	// CheckAnswer reports whether candidate is correct. An error means the
	// candidate could not be interpreted, not that it was wrong.
	CheckAnswer(candidate string) (bool, error)

	question()
}

// ShortAnswer is answered by typing the expected text exactly.
type ShortAnswer struct {
	prompt string
	answer string
}

// NewShortAnswer trims both prompt and answer.
func NewShortAnswer(prompt, answer string) *ShortAnswer {
	return &ShortAnswer{
		prompt: strings.TrimSpace(prompt),
		answer: strings.TrimSpace(answer),
	}
}

func (q *ShortAnswer) Kind() Kind           { return KindShortAnswer }
func (q *ShortAnswer) Prompt() string       { return q.prompt }
func (q *ShortAnswer) QuestionText() string { return q.prompt }
func (q *ShortAnswer) AnswerText() string   { return q.answer }

// CheckAnswer compares case-sensitively against the stored answer.
func (q *ShortAnswer) CheckAnswer(candidate string) (bool, error) {
	return candidate == q.answer, nil
}

func (*ShortAnswer) question() {}

// MultipleChoice is answered with the letter of one of its choices.
type MultipleChoice struct {
	prompt  string
	choices []string
	correct int
}

const (
	MinChoices = 3
	MaxChoices = 6
)

// NewMultipleChoice validates the choice count and the correct index.
// The prompt and choices are stored as given.
func NewMultipleChoice(prompt string, choices []string, correct int) (*MultipleChoice, error) {
	switch {
	case len(choices) < MinChoices:
		return nil, ErrNotEnoughChoices
	case len(choices) > MaxChoices:
		return nil, ErrTooManyChoices
	case correct < 0 || correct >= len(choices):
		return nil, ErrAnswerNotChoice
	}
	return &MultipleChoice{
		prompt:  prompt,
		choices: append([]string(nil), choices...),
		correct: correct,
	}, nil
}

func (q *MultipleChoice) Kind() Kind     { return KindMultipleChoice }
func (q *MultipleChoice) Prompt() string { return q.prompt }

// Correct returns the zero-based index of the correct choice.
func (q *MultipleChoice) Correct() int { return q.correct }

// Choices returns a copy of the choices in file order.
func (q *MultipleChoice) Choices() []string {
	return append([]string(nil), q.choices...)
}

// QuestionText renders the prompt followed by one lettered line per choice.
func (q *MultipleChoice) QuestionText() string {
	var b strings.Builder
	b.WriteString(q.prompt)
	for i := range q.choices {
		b.WriteByte('\n')
		b.WriteString(q.renderChoice(i))
	}
	return b.String()
}

func (q *MultipleChoice) AnswerText() string {
	return q.renderChoice(q.correct)
}

// CheckAnswer decodes candidate as a choice letter. Codec errors are returned
// unchanged.
func (q *MultipleChoice) CheckAnswer(candidate string) (bool, error) {
	idx, err := DecodeChoice(candidate)
	if err != nil {
		return false, err
	}
	return idx == q.correct, nil
}

func (q *MultipleChoice) renderChoice(i int) string {
	return fmt.Sprintf("%s) %s", ChoiceLetter(i), strings.TrimSpace(q.choices[i]))
}

func (*MultipleChoice) question() {}
