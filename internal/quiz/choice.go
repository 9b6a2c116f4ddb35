package quiz

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxChoiceLetter is the highest letter the codec accepts.
const MaxChoiceLetter = 'g'

// DecodeChoice converts a choice letter into a zero-based index (a=0 ... g=6).
// Letters are matched case-insensitively. Only trailing whitespace is ignored.
func DecodeChoice(token string) (int, error) {
	token = strings.TrimRightFunc(token, unicode.IsSpace)

	switch n := utf8.RuneCountInString(token); {
	case n > 1:
		return 0, ErrChoiceTooLong
	case n == 0:
		return 0, ErrNoChoice
	}

	r, _ := utf8.DecodeRuneInString(token)
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return 0, ErrChoiceNotLetter
	}
	if r > MaxChoiceLetter {
		return 0, ErrChoiceOutOfRange
	}
	return int(r - 'a'), nil
}

// ChoiceLetter returns the letter for a zero-based choice index.
func ChoiceLetter(index int) string {
	return string(rune('a' + index))
}
