package quiz_test

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/p-n-ai/pai-quiz/internal/quiz"
)

func TestWriteYAML(t *testing.T) {
	res := quiz.Load([]string{
		"sa|x| 2 + 2 | 4 ",
		"mc|x|Largest ocean?|Atlantic|Pacific|Indian|b",
	})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics())
	}

	var buf bytes.Buffer
	if err := quiz.WriteYAML(&buf, res.Questions); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	var got []quiz.ExportedQuestion
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	if got[0].Type != "short_answer" || got[0].Prompt != "2 + 2" || got[0].Answer == nil || *got[0].Answer != "4" {
		t.Errorf("short answer = %+v", got[0])
	}
	if got[1].Type != "multiple_choice" || got[1].Correct != "b" || len(got[1].Choices) != 3 {
		t.Errorf("multiple choice = %+v", got[1])
	}
	if got[1].Answer != nil {
		t.Errorf("multiple choice Answer = %q, want none", *got[1].Answer)
	}
}

func TestWriteYAML_EmptyShortAnswer(t *testing.T) {
	res := quiz.Load([]string{"sa|x|Leave blank|"})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics())
	}

	var buf bytes.Buffer
	if err := quiz.WriteYAML(&buf, res.Questions); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}
	if !strings.Contains(buf.String(), `answer: ""`) {
		t.Errorf("output missing empty answer:\n%s", buf.String())
	}

	var got []quiz.ExportedQuestion
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(got) != 1 || got[0].Answer == nil || *got[0].Answer != "" {
		t.Errorf("round trip = %+v, want an empty answer", got)
	}
}

func TestWriteYAML_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := quiz.WriteYAML(&buf, nil); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("WriteYAML(nil) = %q, want %q", buf.String(), "[]\n")
	}
}
