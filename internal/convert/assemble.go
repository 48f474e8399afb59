package convert

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pavelanni/quizkit/internal/model"
)

const maxLineBytes = 1 << 20

// draft is the question currently being assembled.
type draft struct {
	question   string
	options    [model.OptionSlots]string
	hasOptions bool
	correct    int
	hasCorrect bool
}

// assembler folds classified lines into questions. At most one draft is open.
type assembler struct {
	open *draft
	out  []model.Question
}

func newAssembler() *assembler {
	return &assembler{out: []model.Question{}}
}

func (a *assembler) feed(l Line) {
	if l.Kind == KindQuestionStart {
		a.flush()
		a.open = &draft{question: l.Text, correct: model.NoAnswer}
		return
	}

	d := a.open
	if d == nil {
		return
	}

	switch l.Kind {
	case KindOption:
		if i, ok := OptionIndex(l.Letter); ok {
			d.options[i] = strings.TrimSpace(l.Text)
			d.hasOptions = true
		}
	case KindCorrectMarker:
		// The last marker wins, even when its token does not resolve.
		d.correct, d.hasCorrect = OptionIndex(l.Token)
	case KindPlain:
		// Text after the first option is dropped.
		if !d.hasOptions {
			d.question = strings.TrimSpace(d.question + " " + strings.TrimSpace(l.Text))
		}
	}
}

// flush emits the open draft, if any.
func (a *assembler) flush() {
	if a.open == nil {
		return
	}
	a.out = append(a.out, a.open.finalize())
	a.open = nil
}

func (a *assembler) finish() []model.Question {
	a.flush()
	return a.out
}

func (d *draft) finalize() model.Question {
	correct := model.NoAnswer
	if d.hasCorrect && d.correct >= 0 && d.correct < model.OptionSlots {
		correct = d.correct
	}
	options := make([]string, model.OptionSlots)
	copy(options, d.options[:])
	return model.Question{
		Question:     strings.TrimSpace(d.question),
		Options:      options,
		CorrectIndex: correct,
		Explanation:  "",
	}
}

// Parse reads free-form question text and returns the questions found in it,
// in input order. Malformed question text never fails; only read errors do.
func Parse(r io.Reader) ([]model.Question, error) {
	a := newAssembler()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(scanLines)
	for sc.Scan() {
		a.feedRaw(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read question text: %w", err)
	}
	return a.finish(), nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) []model.Question {
	a := newAssembler()
	for _, line := range strings.FieldsFunc(s, isLineBreak) {
		a.feedRaw(line)
	}
	return a.finish()
}

// feedRaw skips blank lines and classifies the rest.
func (a *assembler) feedRaw(line string) {
	line = strings.TrimFunc(line, unicode.IsSpace)
	if line == "" {
		return
	}
	a.feed(Classify(line))
}

// isLineBreak reports the runes that end a line: LF, CR, VT, FF, the
// file/group/record separators, NEL and the Unicode line and paragraph
// separators. CRLF splits twice; the empty piece between is a blank line.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// scanLines is a bufio.SplitFunc that breaks on every rune isLineBreak accepts.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexFunc(data, isLineBreak); i >= 0 {
		_, size := utf8.DecodeRune(data[i:])
		return i + size, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
