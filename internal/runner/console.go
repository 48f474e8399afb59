package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/pavelanni/quizkit/internal/i18n"
)

// Console renders questions and verdicts for a human reader.
// Colors are dropped automatically when out is not a terminal.
type Console struct {
	out     io.Writer
	heading lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	muted   lipgloss.Style
}

// NewConsole creates a console writing to out.
func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:     out,
		heading: r.NewStyle().Foreground(lipgloss.Color("33")),
		good:    r.NewStyle().Foreground(lipgloss.Color("42")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("196")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// Question prints the numbered question followed by its 1-based options.
func (c *Console) Question(ctx context.Context, n int, it Item) {
	fmt.Fprintln(c.out)
	header := i18n.Td(ctx, "QuestionHeader", map[string]any{"N": n, "Text": it.Question})
	fmt.Fprintln(c.out, c.heading.Render(header))
	for i, opt := range it.Options {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, opt)
	}
}

// Correct prints a positive verdict.
func (c *Console) Correct(ctx context.Context) {
	fmt.Fprintln(c.out, c.good.Render(i18n.T(ctx, "VerdictCorrect")))
}

// Wrong prints a negative verdict naming the right answer.
func (c *Console) Wrong(ctx context.Context, answer string) {
	fmt.Fprintln(c.out, c.bad.Render(i18n.Td(ctx, "VerdictWrong", map[string]any{"Answer": answer})))
}

// Note prints secondary text.
func (c *Console) Note(text string) {
	fmt.Fprintln(c.out, c.muted.Render(text))
}

// Line prints text as is.
func (c *Console) Line(text string) {
	fmt.Fprintln(c.out, text)
}
