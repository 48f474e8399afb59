package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/pavelanni/quizkit/internal/model"
)

func TestConvertFeatures(t *testing.T) {
	options := godog.Options{
		Format:    "progress",
		Paths:     []string{filepath.Join("testdata", "features")},
		Output:    io.Discard,
		TestingT:  t,
		Randomize: 0,
	}

	suite := godog.TestSuite{
		Name:                "convert-features",
		ScenarioInitializer: initializeConvertScenario,
		Options:             &options,
	}

	if suite.Run() != 0 {
		t.Fatalf("convert features failed")
	}
}

// convertState holds one scenario's input and output.
type convertState struct {
	input  string
	output []model.Question
}

func initializeConvertScenario(ctx *godog.ScenarioContext) {
	state := &convertState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*state = convertState{}
		return ctx, nil
	})

	ctx.Step(`^the question text:$`, state.theQuestionText)
	ctx.Step(`^the text is converted$`, state.theTextIsConverted)
	ctx.Step(`^(\d+) questions? (?:is|are) emitted$`, state.questionsAreEmitted)
	ctx.Step(`^question (\d+) reads "([^"]*)"$`, state.questionReads)
	ctx.Step(`^question (\d+) has options "([^"]*)"$`, state.questionHasOptions)
	ctx.Step(`^question (\d+) has correct index (-?\d+)$`, state.questionHasCorrectIndex)
}

func (s *convertState) theQuestionText(doc *godog.DocString) error {
	s.input = doc.Content
	return nil
}

func (s *convertState) theTextIsConverted() error {
	out, err := Parse(strings.NewReader(s.input))
	if err != nil {
		return err
	}
	s.output = out
	return nil
}

func (s *convertState) questionsAreEmitted(n int) error {
	if len(s.output) != n {
		return fmt.Errorf("expected %d questions, got %d", n, len(s.output))
	}
	return nil
}

func (s *convertState) question(n int) (model.Question, error) {
	if n < 1 || n > len(s.output) {
		return model.Question{}, fmt.Errorf("no question %d among %d", n, len(s.output))
	}
	return s.output[n-1], nil
}

func (s *convertState) questionReads(n int, text string) error {
	q, err := s.question(n)
	if err != nil {
		return err
	}
	if q.Question != text {
		return fmt.Errorf("question %d reads %q, want %q", n, q.Question, text)
	}
	return nil
}

func (s *convertState) questionHasOptions(n int, joined string) error {
	q, err := s.question(n)
	if err != nil {
		return err
	}
	want := strings.Split(joined, "|")
	if !reflect.DeepEqual(q.Options, want) {
		return fmt.Errorf("question %d options %q, want %q", n, q.Options, want)
	}
	return nil
}

func (s *convertState) questionHasCorrectIndex(n, idx int) error {
	q, err := s.question(n)
	if err != nil {
		return err
	}
	if q.CorrectIndex != idx {
		return fmt.Errorf("question %d correct index %d, want %d", n, q.CorrectIndex, idx)
	}
	return nil
}
