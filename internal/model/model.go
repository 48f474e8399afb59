package model

import "encoding/json"

// OptionSlots is the number of answer positions a converted question always has.
const OptionSlots = 4

// NoAnswer is the wire value of correct_index when the correct option is unknown.
const NoAnswer = -1

// Question is a multiple-choice question as exchanged between the tools.
type Question struct {
	Question     string          `json:"question" yaml:"question"`
	Options      []string        `json:"options" yaml:"options"`
	CorrectIndex int             `json:"correct_index" yaml:"correct_index"`
	Explanation  string          `json:"explanation" yaml:"explanation"`
	Source       json.RawMessage `json:"source,omitempty" yaml:"-"`
}

// Citation points at the normative document an answer is taken from.
type Citation struct {
	DocumentNumber string `json:"document_number" yaml:"document_number"`
	DocumentTitle  string `json:"document_title" yaml:"document_title"`
	Clause         string `json:"clause" yaml:"clause"`
}

// IsZero reports whether the citation carries no information.
func (c Citation) IsZero() bool {
	return c.DocumentNumber == "" && c.DocumentTitle == "" && c.Clause == ""
}
