package runner

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pavelanni/quizkit/internal/model"
)

// Item is a question as read from a question bank. CorrectIndex is nil when
// the bank does not say which option is right.
type Item struct {
	Question     string          `json:"question"`
	Options      []string        `json:"options"`
	CorrectIndex *int            `json:"correct_index,omitempty"`
	Explanation  string          `json:"explanation,omitempty"`
	Source       json.RawMessage `json:"source,omitempty"`
}

// Answer returns the correct option index when the item declares one.
// Both an absent index and the -1 placeholder mean "unknown".
func (it Item) Answer() (int, bool) {
	if it.CorrectIndex == nil || *it.CorrectIndex == model.NoAnswer {
		return model.NoAnswer, false
	}
	return *it.CorrectIndex, true
}

// UnmarshalYAML decodes an item from YAML, converting its source to JSON.
func (it *Item) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		Question     string         `yaml:"question"`
		Options      []string       `yaml:"options"`
		CorrectIndex *int           `yaml:"correct_index"`
		Explanation  string         `yaml:"explanation"`
		Source       map[string]any `yaml:"source"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*it = Item{
		Question:     aux.Question,
		Options:      aux.Options,
		CorrectIndex: aux.CorrectIndex,
		Explanation:  aux.Explanation,
	}
	if aux.Source != nil {
		raw, err := json.Marshal(aux.Source)
		if err != nil {
			return fmt.Errorf("line %d: encode source: %w", value.Line, err)
		}
		it.Source = raw
	}
	return nil
}
