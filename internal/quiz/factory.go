package quiz

import "strings"

// Field positions shared by every record type.
const (
	fieldType = iota
	_ // reserved, never read
	fieldPrompt
	fieldAnswer // first choice for multiple choice
)

// Build constructs a question from the fields of one record. Any error is a
// *LoadError carrying line.
func Build(line int, fields []string) (Question, error) {
	q, err := build(fields)
	if err != nil {
		return nil, &LoadError{Line: line, Err: err}
	}
	return q, nil
}

func build(fields []string) (Question, error) {
	if len(fields) < 4 {
		return nil, ErrNotEnoughFields
	}

	switch strings.ToLower(strings.TrimSpace(fields[fieldType])) {
	case "sa", "s":
		return NewShortAnswer(fields[fieldPrompt], fields[fieldAnswer]), nil
	case "mc", "m":
		return buildMultipleChoice(fields)
	default:
		return nil, ErrUnknownType
	}
}

// buildMultipleChoice reads type|reserved|prompt|choice...|letter. The choices
// share the record delimiter, so everything between the prompt and the final
// field is a choice.
func buildMultipleChoice(fields []string) (Question, error) {
	if len(fields) < 5 {
		return nil, ErrMultipleChoiceLen
	}
	last := len(fields) - 1

	correct, err := DecodeChoice(fields[last])
	if err != nil {
		return nil, err
	}
	q, err := NewMultipleChoice(fields[fieldPrompt], fields[fieldAnswer:last], correct)
	if err != nil {
		return nil, err
	}
	return q, nil
}
