package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/pavelanni/quizkit/internal/i18n"
)

// ErrNoInput is returned when the answer stream ends before a valid answer.
var ErrNoInput = errors.New("answer input closed")

// Prompter asks for option numbers on a line-oriented console.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// echo writes each consumed answer after its prompt. A terminal
	// already shows what was typed; piped input does not.
	echo bool
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, echo: !isTerminal(in)}
}

// AskIndex prompts until the user enters a number in 1..n and returns it zero-based.
// Non-numeric and out-of-range entries are reported and asked again.
func (p *Prompter) AskIndex(ctx context.Context, n int) (int, error) {
	for {
		fmt.Fprint(p.out, i18n.Td(ctx, "AskOption", map[string]any{"Max": n})+" ")

		line, err := p.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("read answer: %w", err)
			}
			if strings.TrimSpace(line) == "" {
				fmt.Fprintln(p.out)
				return 0, ErrNoInput
			}
		}

		raw := strings.TrimSpace(line)
		if p.echo {
			fmt.Fprintln(p.out, raw)
		}
		if !isNumber(raw) {
			fmt.Fprintln(p.out, i18n.T(ctx, "NotANumber"))
			continue
		}
		selected, err := strconv.Atoi(raw)
		if err != nil || selected < 1 || selected > n {
			fmt.Fprintln(p.out, i18n.T(ctx, "OutOfRange"))
			continue
		}
		return selected - 1, nil
	}
}

// isTerminal reports whether the answer stream is a TTY.
var isTerminal = defaultIsTerminal

func defaultIsTerminal(r io.Reader) bool {
	if f, ok := r.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
