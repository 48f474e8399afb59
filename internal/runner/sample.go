package runner

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/pavelanni/quizkit/internal/checker"
	"github.com/pavelanni/quizkit/internal/i18n"
)

// DefaultSampleSize is the number of questions in one interactive session.
const DefaultSampleSize = 30

// Sample draws n distinct items in random order.
func Sample(items []Item, n int, rng *rand.Rand) ([]Item, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", n)
	}
	if len(items) < n {
		return nil, fmt.Errorf("need at least %d questions, found %d", n, len(items))
	}
	picked := make([]Item, n)
	for i, idx := range rng.Perm(len(items))[:n] {
		picked[i] = items[idx]
	}
	return picked, nil
}

// Sampler runs an interactive session over a random subset of a bank.
type Sampler struct {
	Console  *Console
	Prompter *Prompter
	Size     int
	Rand     *rand.Rand
}

// Score is the outcome of a sampling session.
type Score struct {
	Correct int
	Total   int
}

// Run samples the bank, asks every drawn question and prints the running and
// final score. Questions without a correct answer are shown but never scored.
func (s *Sampler) Run(ctx context.Context, items []Item) (Score, error) {
	picked, err := Sample(items, s.Size, s.Rand)
	if err != nil {
		return Score{}, err
	}
	s.Console.Line(i18n.Tp(ctx, "QuestionsSampled", len(picked)))

	score := Score{Total: len(picked)}
	for i, it := range picked {
		n := i + 1
		s.Console.Question(ctx, n, it)

		correct, ok := it.Answer()
		if !ok {
			s.Console.Note(i18n.T(ctx, "Unscorable"))
			continue
		}

		user, err := s.Prompter.AskIndex(ctx, len(it.Options))
		if err != nil {
			return score, fmt.Errorf("question %d: %w", n, err)
		}
		verdict, err := checker.Evaluate(ctx, checker.Request{
			Question:     it.Question,
			Options:      it.Options,
			CorrectIndex: correct,
			UserIndex:    user,
			Source:       it.Source,
		})
		if err != nil {
			return score, fmt.Errorf("question %d: %w", n, err)
		}

		if verdict.IsCorrect {
			score.Correct++
			s.Console.Correct(ctx)
		} else {
			s.Console.Wrong(ctx, verdict.CorrectAnswer)
		}
		s.Console.Note(i18n.Td(ctx, "RunningScore", map[string]any{"Correct": score.Correct, "Asked": n}))
	}

	s.Console.Line("")
	s.Console.Line(i18n.Td(ctx, "FinalScore", map[string]any{"Correct": score.Correct, "Total": score.Total}))
	slog.Info("sampling session finished", "correct", score.Correct, "total", score.Total)
	return score, nil
}

// NewRand returns a generator seeded with seed, or randomly when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
