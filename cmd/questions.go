package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/pwaquiz/internal/config"
	"github.com/abhisek/pwaquiz/internal/quiz"
)

func newQuestionsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the quiz questions and their option keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			if err := config.ValidateOutput(output); err != nil {
				return fmt.Errorf("--output: %w", err)
			}
			if output == config.OutputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(c.key.Questions())
			}
			return writeCatalog(cmd.OutOrStdout(), c.key)
		},
	}
	cmd.Flags().StringP("output", "o", config.OutputText, "Catalog format: text or json")
	return cmd
}

func kindLabel(k quiz.Kind) string {
	switch k {
	case quiz.KindFillInBlank:
		return "fill in the blank"
	case quiz.KindSingleChoice:
		return "choose one"
	case quiz.KindMultiSelect:
		return "select all that apply"
	}
	return string(k)
}

// writeCatalog prints each question with its flag name and option keys.
// The accepted answers are never printed.
func writeCatalog(w io.Writer, key *quiz.AnswerKey) error {
	for i, q := range key.Questions() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Question %d [--%s, %s, %d points]\n  %s\n",
			q.Num, q.ID, kindLabel(q.Kind), q.Points, q.Prompt); err != nil {
			return err
		}
		for _, o := range q.Options {
			if _, err := fmt.Fprintf(w, "    %s) %s\n", o.Key, o.Label); err != nil {
				return err
			}
		}
	}
	return nil
}
