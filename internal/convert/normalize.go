package convert

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pavelanni/quizkit/internal/model"
)

// Cyrillic А, Б, В, Г stand in for the Latin letters they resemble.
var letterIndex = map[string]int{
	"A": 0, "B": 1, "C": 2, "D": 3,
	"А": 0, "Б": 1, "В": 2, "Г": 3,
}

// OptionIndex resolves an answer token (a letter or a 1-based digit) to a
// zero-based option index. ok is false for anything else.
func OptionIndex(token string) (idx int, ok bool) {
	t := cases.Upper(language.Und).String(strings.TrimSpace(token))
	if t == "" {
		return model.NoAnswer, false
	}
	if isDigits(t) {
		n, err := strconv.Atoi(t)
		if err != nil || n < 1 || n > model.OptionSlots {
			return model.NoAnswer, false
		}
		return n - 1, true
	}
	if i, found := letterIndex[t]; found {
		return i, true
	}
	return model.NoAnswer, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
