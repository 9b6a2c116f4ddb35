package quiz

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ExportedQuestion is the YAML form of a parsed question. Answer is set for
// every short answer, including an empty one, and nil for multiple choice.
type ExportedQuestion struct {
	Type    string   `yaml:"type"`
	Prompt  string   `yaml:"prompt"`
	Answer  *string  `yaml:"answer,omitempty"`
	Choices []string `yaml:"choices,omitempty"`
	Correct string   `yaml:"correct,omitempty"`
}

// Export converts questions to their YAML form.
func Export(questions []Question) []ExportedQuestion {
	out := make([]ExportedQuestion, 0, len(questions))
	for _, q := range questions {
		switch q := q.(type) {
		case *ShortAnswer:
			answer := q.AnswerText()
			out = append(out, ExportedQuestion{
				Type:   q.Kind().String(),
				Prompt: q.Prompt(),
				Answer: &answer,
			})
		case *MultipleChoice:
			out = append(out, ExportedQuestion{
				Type:    q.Kind().String(),
				Prompt:  q.Prompt(),
				Choices: q.Choices(),
				Correct: ChoiceLetter(q.Correct()),
			})
		}
	}
	return out
}

// WriteYAML writes questions to w as a YAML list.
func WriteYAML(w io.Writer, questions []Question) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Export(questions)); err != nil {
		return fmt.Errorf("encoding questions: %w", err)
	}
	return enc.Close()
}
