package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoQuestions is returned for a question bank with an empty list.
var ErrNoQuestions = errors.New("question list is empty")

var errBankShape = errors.New("expected an array of questions or an object with key 'questions'")

// LoadQuestions reads a question bank. The bank is either a bare list of
// questions or an object holding the list under "questions". Files ending in
// .yaml or .yml are read as YAML, everything else as JSON.
func LoadQuestions(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	var items []Item
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		items, err = parseYAMLBank(data)
	default:
		items, err = parseJSONBank(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("parse %s: %w", path, ErrNoQuestions)
	}
	return items, nil
}

func parseJSONBank(data []byte) ([]Item, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errBankShape
	}
	switch trimmed[0] {
	case '[':
		var items []Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	case '{':
		var wrapper struct {
			Questions *[]Item `json:"questions"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, err
		}
		if wrapper.Questions == nil {
			return nil, errBankShape
		}
		return *wrapper.Questions, nil
	default:
		return nil, errBankShape
	}
}

func parseYAMLBank(data []byte) ([]Item, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, errBankShape
	}
	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		var items []Item
		if err := doc.Decode(&items); err != nil {
			return nil, err
		}
		return items, nil
	case yaml.MappingNode:
		var wrapper struct {
			Questions *[]Item `yaml:"questions"`
		}
		if err := doc.Decode(&wrapper); err != nil {
			return nil, err
		}
		if wrapper.Questions == nil {
			return nil, errBankShape
		}
		return *wrapper.Questions, nil
	default:
		return nil, errBankShape
	}
}
