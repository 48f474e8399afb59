package convert

import (
	"regexp"
	"strconv"
)

// Kind tells how a line of question text is interpreted.
type Kind int

const (
	// KindPlain is continuation text.
	KindPlain Kind = iota
	// KindQuestionStart opens a new numbered question.
	KindQuestionStart
	// KindOption is a lettered answer option.
	KindOption
	// KindCorrectMarker declares the correct option.
	KindCorrectMarker
)

func (k Kind) String() string {
	switch k {
	case KindQuestionStart:
		return "question_start"
	case KindOption:
		return "option"
	case KindCorrectMarker:
		return "correct_marker"
	default:
		return "plain"
	}
}

// Line is a classified line of input.
type Line struct {
	Kind   Kind
	Number int    // question number, KindQuestionStart only
	Letter string // option letter, KindOption only
	Token  string // answer token, KindCorrectMarker only
	Text   string
}

// ws also matches no-break and other Unicode spaces, which text pasted
// from office documents is full of.
const ws = `[\s\p{Z}]`

var (
	questionStartRe = regexp.MustCompile(`^` + ws + `*(\d+)[).]` + ws + `*(.+?)` + ws + `*$`)
	optionRe        = regexp.MustCompile(`^` + ws + `*([A-DА-Гa-dа-г])[).:\-]` + ws + `*(.+?)` + ws + `*$`)
	correctMarkerRe = regexp.MustCompile(
		`(?i)^` + ws + `*(?:правильн(?:ый|ого)` + ws + `*ответ|ответ|correct(?:` + ws + `*answer)?|answer)` +
			ws + `*[:\-]?` + ws + `*([A-DА-Гa-dа-г1-4])` + ws + `*$`,
	)
)

// Classify matches one line against the question start, option and correct
// marker shapes, in that order. Anything else is plain text.
func Classify(line string) Line {
	if m := questionStartRe.FindStringSubmatch(line); m != nil {
		// Overlong digit runs still start a question; the number is informational.
		n, _ := strconv.Atoi(m[1])
		return Line{Kind: KindQuestionStart, Number: n, Text: m[2]}
	}
	if m := optionRe.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindOption, Letter: m[1], Text: m[2]}
	}
	if m := correctMarkerRe.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindCorrectMarker, Token: m[1], Text: line}
	}
	return Line{Kind: KindPlain, Text: line}
}
