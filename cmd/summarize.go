package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dayoung/studypal/internal/summarize"
)

// summarizeCmd is the one-shot, non-TUI path: upload a PDF, print the
// summary, optionally save the rendered notes PDF.
var summarizeCmd = &cobra.Command{
	Use:   "summarize <file.pdf>",
	Short: "Summarize a PDF without starting the TUI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !summarize.IsPDF(path) {
			return fmt.Errorf("%s: only .pdf files can be summarized", path)
		}

		cfg, err := resolveAPIConfig(cmd)
		if err != nil {
			return err
		}
		client := summarize.NewClient(cfg)

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		summary, err := client.SummarizePDF(cmd.Context(), path, f)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}

		fmt.Println(summary.NoteStyleSummary)
		for _, p := range summary.Pages {
			fmt.Printf("\n-- Page %d --\n%s\n", p.Page, p.Summary)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(out), ".pdf") {
			out += ".pdf"
		}
		if err := client.DownloadSummaryPDF(cmd.Context(), summary.DocumentID, out); err != nil {
			return fmt.Errorf("download summary PDF: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Saved", out)
		return nil
	},
}

func init() {
	summarizeCmd.Flags().String("out", "", "Also download the rendered notes PDF to this path")
}
