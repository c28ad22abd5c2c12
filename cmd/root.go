package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studypal",
	Short: "AI study companion in the terminal",
	Long:  "StudyPal — terminal study companion with subjects, quizzes, flashcards, and AI-summarized notes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Summarization backend URL (overrides STUDYPAL_API_URL)")

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(versionCmd)
}
