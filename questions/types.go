package questions

import "fmt"

// Difficulty levels the model is asked to choose from. Model output is
// not checked against them.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is the multiple-choice item returned to clients.
type Question struct {
	Text        string   `json:"text"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
	Difficulty  string   `json:"difficulty"`
}

// SeedQuestion is a hardcoded question used when live generation fails.
type SeedQuestion struct {
	Text     string
	Choices  []string
	Answer   string
	// Solution documents the worked answer; it is not sent to clients.
	Solution string
}

// MalformedOutputError means the model answered but its text could not be
// decoded as a Question.
type MalformedOutputError struct {
	Candidate string
	Err       error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }
