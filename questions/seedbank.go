package questions

import (
	"slices"
	"strings"
)

const (
	placeholderText   = "No question available"
	placeholderChoice = "N/A"

	hintFallback     = "Try to identify the formula related to the topic and substitute known values."
	solutionFallback = "Solution unavailable. Try re-checking your method or use seed questions."
)

// FallbackBank maps lowercased subject -> topic -> seed questions.
type FallbackBank map[string]map[string][]SeedQuestion

// seedBank is read-only after package initialization.
var seedBank = FallbackBank{
	"math": {
		"Algebra": {
			{
				Text:     "Solve for x: 2x + 3 = 11",
				Choices:  []string{"3", "4", "5", "6"},
				Answer:   "4",
				Solution: "2x+3=11 => 2x=8 => x=4",
			},
		},
	},
	"physics": {
		"Mechanics": {
			{
				Text:     "A body starts from rest and accelerates uniformly at 2 m/s^2 for 5 s. What is its final velocity?",
				Choices:  []string{"5 m/s", "8 m/s", "10 m/s", "12 m/s"},
				Answer:   "10 m/s",
				Solution: "v = u + at = 0 + 2*5 = 10 m/s",
			},
		},
	},
	"chemistry": {
		"Stoichiometry": {
			{
				Text:     "How many moles are in 36 g of water (H2O)? (Molar mass H2O=18 g/mol)",
				Choices:  []string{"1", "2", "3", "4"},
				Answer:   "2",
				Solution: "36/18 = 2 moles",
			},
		},
	},
}

// Seed returns the first seed question for subject/topic. Subject matching
// ignores case, topic matching does not.
func (b FallbackBank) Seed(subject, topic string) (SeedQuestion, bool) {
	seeds := b[strings.ToLower(subject)][topic]
	if len(seeds) == 0 {
		return SeedQuestion{}, false
	}
	return seeds[0], true
}

// FallbackFor returns the degraded-mode question for subject/topic using
// the built-in seed bank.
func FallbackFor(subject, topic string) Question {
	return seedBank.FallbackFor(subject, topic)
}

func (b FallbackBank) FallbackFor(subject, topic string) Question {
	seed, ok := b.Seed(subject, topic)
	if !ok {
		return placeholderQuestion()
	}
	return seed.Question()
}

// Question converts the seed to a client Question. AnswerIndex is -1 when
// Answer is not among Choices.
func (s SeedQuestion) Question() Question {
	return Question{
		Text:        s.Text,
		Choices:     slices.Clone(s.Choices),
		AnswerIndex: slices.Index(s.Choices, s.Answer),
		Difficulty:  DifficultyEasy,
	}
}

func placeholderQuestion() Question {
	return Question{
		Text:        placeholderText,
		Choices:     []string{placeholderChoice, placeholderChoice, placeholderChoice, placeholderChoice},
		AnswerIndex: 0,
		Difficulty:  DifficultyEasy,
	}
}

// FallbackExplanation is the fixed text served when the model cannot explain.
func FallbackExplanation(hintOnly bool) string {
	if hintOnly {
		return hintFallback
	}
	return solutionFallback
}
