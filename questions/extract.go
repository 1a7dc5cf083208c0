package questions

import (
	"encoding/json"
	"errors"
	"strings"
)

// jsonCandidate returns the span from the first '{' to the last '}' of s.
// Without both braces the whole text is the candidate.
func jsonCandidate(s string) string {
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last == -1 {
		return s
	}
	if last < first {
		return ""
	}
	return s[first : last+1]
}

// ExtractQuestion decodes the question object embedded in raw model output.
// Prose or code fences around the object are tolerated; braces in prose
// outside the object are not. The decoded shape is not validated.
func ExtractQuestion(raw string) (Question, error) {
	candidate := jsonCandidate(strings.TrimSpace(raw))

	var q *Question
	if err := json.Unmarshal([]byte(candidate), &q); err != nil {
		return Question{}, &MalformedOutputError{Candidate: candidate, Err: err}
	}
	if q == nil {
		return Question{}, &MalformedOutputError{Candidate: candidate, Err: errors.New("null question object")}
	}
	return *q, nil
}
