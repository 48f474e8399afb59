package model

import "encoding/json"

// Summary is the JSON report produced by a batch quiz run.
type Summary struct {
	RunID            string           `json:"run_id"`
	TotalQuestions   int              `json:"total_questions"`
	CorrectAnswers   int              `json:"correct_answers"`
	SkippedQuestions int              `json:"skipped_questions"`
	Results          []QuestionResult `json:"results"`
}

// QuestionResult is one entry of Summary.Results.
// Skipped entries carry Reason and CorrectIndex; answered entries carry Verdict.
type QuestionResult struct {
	Question     string `json:"question"`
	Skipped      bool   `json:"skipped,omitempty"`
	Reason       string `json:"reason,omitempty"`
	CorrectIndex *int   `json:"correct_index,omitempty"`
	*Verdict
}

// Verdict is the outcome of checking one answer.
type Verdict struct {
	IsCorrect     bool            `json:"is_correct"`
	UserAnswer    string          `json:"user_answer"`
	CorrectAnswer string          `json:"correct_answer"`
	Explanation   string          `json:"explanation"`
	Source        json.RawMessage `json:"source,omitempty"`
}
