package runner

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAnswers reads predefined answers given as comma-separated 1-based
// option numbers and returns them zero-based. Blank entries are ignored.
func ParseAnswers(raw string, expected int) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var answers []int
	n := 0
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n++
		if !isNumber(part) {
			return nil, fmt.Errorf("answer #%d must be a number, got %q", n, part)
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("answer #%d: %w", n, err)
		}
		if v < 1 {
			return nil, fmt.Errorf("answer #%d must be >= 1, got %d", n, v)
		}
		answers = append(answers, v-1)
	}

	if len(answers) > expected {
		return nil, fmt.Errorf("got %d answers for %d questions", len(answers), expected)
	}
	return answers, nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
