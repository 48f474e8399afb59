package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pavelanni/quizkit/internal/checker"
	"github.com/pavelanni/quizkit/internal/i18n"
	"github.com/pavelanni/quizkit/internal/model"
)

// Batch runs every question of a bank in order, taking answers from a
// predefined list first and from the prompter after the list runs out.
type Batch struct {
	Console  *Console
	Prompter *Prompter
	Answers  []int // zero-based, by question position
}

// Run asks all questions and returns the run summary. Questions without a
// correct index are skipped and reported as such.
func (b *Batch) Run(ctx context.Context, items []Item) (model.Summary, error) {
	summary := model.Summary{
		RunID:          uuid.NewString(),
		TotalQuestions: len(items),
		Results:        make([]model.QuestionResult, 0, len(items)),
	}
	log := slog.With("run_id", summary.RunID)
	log.Debug("starting batch run", "questions", len(items), "predefined", len(b.Answers))

	for i, it := range items {
		n := i + 1
		b.Console.Question(ctx, n, it)

		correct, ok := it.Answer()
		if !ok {
			summary.SkippedQuestions++
			b.Console.Note(i18n.T(ctx, "SkipNoAnswer"))
			idx := model.NoAnswer
			summary.Results = append(summary.Results, model.QuestionResult{
				Question:     it.Question,
				Skipped:      true,
				Reason:       i18n.T(ctx, "SkipReason"),
				CorrectIndex: &idx,
			})
			log.Debug("skipped question", "n", n)
			continue
		}

		user, err := b.answerFor(ctx, i, it)
		if err != nil {
			return summary, fmt.Errorf("question %d: %w", n, err)
		}

		verdict, err := checker.Evaluate(ctx, checker.Request{
			Question:     it.Question,
			Options:      it.Options,
			CorrectIndex: correct,
			UserIndex:    user,
			Source:       it.Source,
		})
		if err != nil {
			return summary, fmt.Errorf("question %d: %w", n, err)
		}
		if verdict.IsCorrect {
			summary.CorrectAnswers++
		}
		summary.Results = append(summary.Results, model.QuestionResult{
			Question: it.Question,
			Verdict:  &verdict,
		})
	}

	log.Info("batch run finished",
		"total", summary.TotalQuestions,
		"correct", summary.CorrectAnswers,
		"skipped", summary.SkippedQuestions,
	)
	return summary, nil
}

// answerFor returns the predefined answer for question i, or prompts for one.
func (b *Batch) answerFor(ctx context.Context, i int, it Item) (int, error) {
	if i < len(b.Answers) {
		user := b.Answers[i]
		if user < 0 || user >= len(it.Options) {
			return 0, fmt.Errorf("predefined answer %d is outside the %d options", user+1, len(it.Options))
		}
		b.Console.Line(i18n.Td(ctx, "PredefinedChoice", map[string]any{"N": user + 1}))
		return user, nil
	}
	if b.Prompter == nil {
		return 0, ErrNoInput
	}
	return b.Prompter.AskIndex(ctx, len(it.Options))
}
