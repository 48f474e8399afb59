// Package checker verifies a selected answer against the correct one and
// explains the outcome.
package checker

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/pavelanni/quizkit/internal/i18n"
	"github.com/pavelanni/quizkit/internal/model"
)

// Request is one answer to check.
type Request struct {
	Question     string          `json:"question"`
	Options      []string        `json:"options"`
	CorrectIndex int             `json:"correct_index"`
	UserIndex    int             `json:"user_index"`
	Source       json.RawMessage `json:"source,omitempty"`
}

// Result is the outcome of a check.
type Result = model.Verdict

// Evaluate validates req and reports whether the user picked the correct option.
// A supplied source is echoed back unchanged and cited in the explanation.
func Evaluate(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Question) == "" {
		return Result{}, inputError(i18n.T(ctx, "ErrQuestionBlank"))
	}
	if len(req.Options) == 0 {
		return Result{}, inputError(i18n.T(ctx, "ErrOptionsEmpty"))
	}
	if req.CorrectIndex < 0 || req.CorrectIndex >= len(req.Options) {
		return Result{}, inputError(i18n.Td(ctx, "ErrIndexRange", map[string]any{"Field": "correct_index"}))
	}
	if req.UserIndex < 0 || req.UserIndex >= len(req.Options) {
		return Result{}, inputError(i18n.Td(ctx, "ErrIndexRange", map[string]any{"Field": "user_index"}))
	}
	cite, cited, err := decodeSource(ctx, req.Source)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		IsCorrect:     req.UserIndex == req.CorrectIndex,
		UserAnswer:    req.Options[req.UserIndex],
		CorrectAnswer: req.Options[req.CorrectIndex],
	}
	if cited {
		res.Source = req.Source
	}
	res.Explanation = explain(ctx, req.Question, res, cite, cited)
	return res, nil
}

func explain(ctx context.Context, question string, res Result, cite model.Citation, cited bool) string {
	data := map[string]any{
		"Question": question,
		"Correct":  res.CorrectAnswer,
		"User":     res.UserAnswer,
	}
	if !cited {
		if res.IsCorrect {
			return i18n.Td(ctx, "ExplainCorrect", data)
		}
		return i18n.Td(ctx, "ExplainWrong", data)
	}

	data["Citation"] = citationPhrase(ctx, cite)
	if res.IsCorrect {
		return i18n.Td(ctx, "ExplainCorrectCited", data)
	}
	return i18n.Td(ctx, "ExplainWrongCited", data)
}

// citationPhrase renders " in clause X N «Title»", or "" when there is nothing to cite.
func citationPhrase(ctx context.Context, c model.Citation) string {
	if c.IsZero() {
		return ""
	}
	var parts []string
	if c.Clause != "" {
		parts = append(parts, i18n.Td(ctx, "CitationClause", map[string]any{"Clause": c.Clause}))
	}
	if c.DocumentNumber != "" {
		parts = append(parts, c.DocumentNumber)
	}
	if c.DocumentTitle != "" {
		parts = append(parts, "«"+c.DocumentTitle+"»")
	}
	return " " + strings.Join(parts, " ")
}

// decodeSource reads an optional citation. Absent and null sources are not cited.
func decodeSource(ctx context.Context, raw json.RawMessage) (model.Citation, bool, error) {
	var c model.Citation
	if isAbsent(raw) {
		return c, false, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return c, false, inputError(i18n.T(ctx, "ErrSourceType"))
	}
	targets := []struct {
		name string
		dst  *string
	}{
		{"document_number", &c.DocumentNumber},
		{"document_title", &c.DocumentTitle},
		{"clause", &c.Clause},
	}
	for _, t := range targets {
		v, ok := fields[t.name]
		if !ok || isAbsent(v) {
			continue
		}
		if err := json.Unmarshal(v, t.dst); err != nil {
			return c, false, inputError(i18n.Td(ctx, "ErrSourceFieldType", map[string]any{"Field": t.name}))
		}
	}
	return c, true, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
