package quiz_test

import (
	"errors"
	"testing"

	"github.com/p-n-ai/pai-quiz/internal/quiz"
)

func TestShortAnswer(t *testing.T) {
	q := quiz.NewShortAnswer("  Q  ", "\tA ")

	if q.QuestionText() != "Q" {
		t.Errorf("QuestionText() = %q, want Q", q.QuestionText())
	}
	if q.AnswerText() != "A" {
		t.Errorf("AnswerText() = %q, want A", q.AnswerText())
	}

	tests := []struct {
		candidate string
		want      bool
	}{
		{"A", true},
		{"B", false},
		{"a", false},
		{"Q", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := q.CheckAnswer(tt.candidate)
		if err != nil {
			t.Fatalf("CheckAnswer(%q) error = %v", tt.candidate, err)
		}
		if got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.candidate, got, tt.want)
		}
	}
}

func TestMultipleChoice_CheckAnswer(t *testing.T) {
	for n := quiz.MinChoices; n <= quiz.MaxChoices; n++ {
		choices := make([]string, n)
		for i := range choices {
			choices[i] = "option " + quiz.ChoiceLetter(i)
		}
		for correct := 0; correct < n; correct++ {
			q, err := quiz.NewMultipleChoice("Q", choices, correct)
			if err != nil {
				t.Fatalf("NewMultipleChoice(%d choices, %d) error = %v", n, correct, err)
			}
			for i := 0; i < n; i++ {
				got, err := q.CheckAnswer(quiz.ChoiceLetter(i))
				if err != nil {
					t.Fatalf("CheckAnswer(%q) error = %v", quiz.ChoiceLetter(i), err)
				}
				if got != (i == correct) {
					t.Errorf("%d choices, correct %d: CheckAnswer(%q) = %v", n, correct, quiz.ChoiceLetter(i), got)
				}
			}
		}
	}
}

func TestMultipleChoice_CheckAnswerErrors(t *testing.T) {
	q, err := quiz.NewMultipleChoice("Q", []string{"x", "y", "z"}, 1)
	if err != nil {
		t.Fatalf("NewMultipleChoice() error = %v", err)
	}

	tests := []struct {
		candidate string
		wantErr   error
	}{
		{"", quiz.ErrNoChoice},
		{"bb", quiz.ErrChoiceTooLong},
		{"2", quiz.ErrChoiceNotLetter},
		{"k", quiz.ErrChoiceOutOfRange},
	}
	for _, tt := range tests {
		ok, err := q.CheckAnswer(tt.candidate)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("CheckAnswer(%q) error = %v, want %v", tt.candidate, err, tt.wantErr)
		}
		if ok {
			t.Errorf("CheckAnswer(%q) = true on error", tt.candidate)
		}
	}

	// A valid letter past the last choice is simply wrong.
	ok, err := q.CheckAnswer("f")
	if err != nil || ok {
		t.Errorf("CheckAnswer(f) = %v, %v, want false, nil", ok, err)
	}
}

func TestMultipleChoice_Text(t *testing.T) {
	q, err := quiz.NewMultipleChoice("Largest planet?", []string{" Mars", "Jupiter ", "Venus"}, 1)
	if err != nil {
		t.Fatalf("NewMultipleChoice() error = %v", err)
	}

	wantQuestion := "Largest planet?\na) Mars\nb) Jupiter\nc) Venus"
	if q.QuestionText() != wantQuestion {
		t.Errorf("QuestionText() = %q, want %q", q.QuestionText(), wantQuestion)
	}
	if q.AnswerText() != "b) Jupiter" {
		t.Errorf("AnswerText() = %q, want %q", q.AnswerText(), "b) Jupiter")
	}
}

func TestMultipleChoice_ChoicesAreCopied(t *testing.T) {
	choices := []string{"x", "y", "z"}
	q, err := quiz.NewMultipleChoice("Q", choices, 0)
	if err != nil {
		t.Fatalf("NewMultipleChoice() error = %v", err)
	}

	choices[0] = "changed"
	got := q.Choices()
	got[1] = "changed"

	if q.Choices()[0] != "x" || q.Choices()[1] != "y" {
		t.Errorf("Choices() = %v, question was mutated", q.Choices())
	}
}

func TestNewMultipleChoice_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		choices []string
		correct int
		wantErr error
	}{
		{"two-choices", []string{"a", "b"}, 0, quiz.ErrNotEnoughChoices},
		{"seven-choices", []string{"1", "2", "3", "4", "5", "6", "7"}, 0, quiz.ErrTooManyChoices},
		{"negative", []string{"a", "b", "c"}, -1, quiz.ErrAnswerNotChoice},
		{"past-end", []string{"a", "b", "c"}, 3, quiz.ErrAnswerNotChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quiz.NewMultipleChoice("Q", tt.choices, tt.correct)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if quiz.KindShortAnswer.String() != "short_answer" {
		t.Errorf("KindShortAnswer = %q", quiz.KindShortAnswer.String())
	}
	if quiz.KindMultipleChoice.String() != "multiple_choice" {
		t.Errorf("KindMultipleChoice = %q", quiz.KindMultipleChoice.String())
	}
	if quiz.Kind(99).String() != "unknown" {
		t.Errorf("Kind(99) = %q", quiz.Kind(99).String())
	}
}
