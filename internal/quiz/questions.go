package quiz

// DefaultQuestions is the built-in review set shown until per-subject
// question generation lands server-side.
func DefaultQuestions() []Question {
	return []Question{
		{
			Prompt:  "Which writing system did King Sejong create during the Joseon dynasty?",
			Options: []string{"Hanja", "Hunminjeongeum", "Idu", "Hyangchal"},
			Correct: 1,
		},
		{
			Prompt:  "In which year did the Imjin War begin?",
			Options: []string{"1492", "1592", "1692", "1792"},
			Correct: 1,
		},
		{
			Prompt:  "Which temple houses the Tripitaka Koreana woodblocks?",
			Options: []string{"Bulguksa", "Haeinsa", "Tongdosa", "Beomeosa"},
			Correct: 1,
		},
	}
}
