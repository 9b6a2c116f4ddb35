package quiz

import "strings"

// Delimiter separates fields within a record.
const Delimiter = "|"

// IsSkippable reports whether a line carries no record.
func IsSkippable(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Classifier decides which source lines are records.
// The zero value skips blank lines only.
type Classifier struct {
	// CommentPrefix, when set, also skips lines whose trimmed text starts with it.
	CommentPrefix string
}

// Skip reports whether line should be ignored.
func (c Classifier) Skip(line string) bool {
	if IsSkippable(line) {
		return true
	}
	if c.CommentPrefix == "" {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(line), c.CommentPrefix)
}

// Tokenize splits a record on the delimiter. Fields are returned untrimmed and
// empty fields are kept.
func Tokenize(line string) []string {
	return strings.Split(line, Delimiter)
}
