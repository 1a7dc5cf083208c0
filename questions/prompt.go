package questions

import "fmt"

// BuildGenerationPrompt returns the system and user instructions for
// generating one multiple-choice question.
func BuildGenerationPrompt(subject, topic, language string) (system, user string) {
	system = fmt.Sprintf(`You are a friendly grade-level exam question generator for %s.
Generate one clear %s %s question suitable for high-school students.
Output JSON only with keys: text, choices (array of 4) and answer_index (0-3), difficulty ("easy"/"medium"/"hard").`,
		subject, language, topic)
	user = fmt.Sprintf("Generate one question for topic: %s. Provide 4 choices and the correct index. Keep language: %s.",
		topic, language)
	return system, user
}

// BuildExplanationPrompt returns the tutor instructions for a question.
// hintOnly asks for a short hint without the solution.
func BuildExplanationPrompt(questionText, language string, hintOnly bool) (system, user string) {
	mode := "step-by-step solution"
	ask := "Give a numbered step-by-step solution in simple language."
	if hintOnly {
		mode = "short hint (no solution)"
		ask = "Give a concise hint only."
	}
	system = fmt.Sprintf("You are a friendly high-school tutor. Provide a %s for the question. Keep language: %s.", mode, language)
	user = fmt.Sprintf("Question: %s --- %s", questionText, ask)
	return system, user
}
