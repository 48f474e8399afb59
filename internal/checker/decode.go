package checker

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/pavelanni/quizkit/internal/i18n"
)

// wireRequest keeps every field raw so type mismatches can be reported per field.
type wireRequest struct {
	Question     json.RawMessage `json:"question"`
	Options      json.RawMessage `json:"options"`
	CorrectIndex json.RawMessage `json:"correct_index"`
	UserIndex    json.RawMessage `json:"user_index"`
	Source       json.RawMessage `json:"source"`
}

// Decode reads exactly one JSON request object from r.
func Decode(ctx context.Context, r io.Reader) (Request, error) {
	var w wireRequest
	dec := json.NewDecoder(r)
	if err := dec.Decode(&w); err != nil {
		return Request{}, malformed(ctx, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("multiple documents are not supported")
		}
		return Request{}, malformed(ctx, err)
	}

	var req Request
	if isAbsent(w.Question) {
		return Request{}, required(ctx, "question")
	}
	if err := json.Unmarshal(w.Question, &req.Question); err != nil {
		return Request{}, inputError(i18n.T(ctx, "ErrQuestionBlank"))
	}

	if isAbsent(w.Options) {
		return Request{}, required(ctx, "options")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(w.Options, &items); err != nil {
		return Request{}, inputError(i18n.T(ctx, "ErrOptionsEmpty"))
	}
	req.Options = make([]string, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &req.Options[i]); err != nil || isAbsent(item) {
			return Request{}, inputError(i18n.T(ctx, "ErrOptionsNotStrings"))
		}
	}

	if err := decodeIndex(ctx, "correct_index", w.CorrectIndex, &req.CorrectIndex); err != nil {
		return Request{}, err
	}
	if err := decodeIndex(ctx, "user_index", w.UserIndex, &req.UserIndex); err != nil {
		return Request{}, err
	}

	if !isAbsent(w.Source) {
		req.Source = w.Source
	}
	return req, nil
}

func decodeIndex(ctx context.Context, field string, raw json.RawMessage, dst *int) error {
	if isAbsent(raw) {
		return required(ctx, field)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return inputError(i18n.Td(ctx, "ErrIndexType", map[string]any{"Field": field}))
	}
	return nil
}

func required(ctx context.Context, field string) error {
	return inputError(i18n.Td(ctx, "ErrFieldRequired", map[string]any{"Field": field}))
}

func malformed(ctx context.Context, err error) error {
	return inputError(i18n.Td(ctx, "ErrMalformedJSON", map[string]any{"Detail": err.Error()}))
}
