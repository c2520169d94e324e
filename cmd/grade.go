package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/pwaquiz/internal/config"
	"github.com/abhisek/pwaquiz/internal/intake"
	"github.com/abhisek/pwaquiz/internal/logging"
	"github.com/abhisek/pwaquiz/internal/quiz"
	"github.com/abhisek/pwaquiz/internal/report"
)

// ErrAttemptFailed is returned by grade --fail-on-fail when the attempt
// scores below the passing score.
var ErrAttemptFailed = errors.New("attempt did not reach the passing score")

func newGradeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade answers given as flags or a JSON document",
		Example: `  pwaquiz grade --q1 "service worker" --q2 b --q3 c --q4 b \
      --q5 progressive,responsive,offline,installable
  pwaquiz grade --answers answers.json --output json
  echo '{"q2": "b"}' | pwaquiz grade --answers - --q1 serviceworker`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGrade(cmd)
		},
	}

	intake.RegisterFlags(cmd.Flags(), c.key)
	cmd.Flags().String("answers", "", "JSON answers document to grade (- reads stdin); question flags override it")
	cmd.Flags().StringP("output", "o", "", "Report format: text or json (default $PWAQUIZ_OUTPUT or text)")
	cmd.Flags().Bool("fail-on-fail", false, "Exit non-zero when the attempt does not pass")
	return cmd
}

func (c *cli) runGrade(cmd *cobra.Command) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = c.cfg.Output
	}
	if err := config.ValidateOutput(output); err != nil {
		return fmt.Errorf("--output: %w", err)
	}

	answers := quiz.SubmittedAnswers{}
	if path, _ := cmd.Flags().GetString("answers"); path != "" {
		doc, err := intake.ReadFile(c.key, path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		answers = doc
	}
	fromFlags, err := intake.FromFlags(cmd.Flags(), c.key)
	if err != nil {
		return err
	}
	answers = intake.Merge(answers, fromFlags)

	result := quiz.NewGrader(c.key).Grade(answers)
	attemptID := uuid.NewString()
	logging.Attempt("cli", attemptID, result)

	out := cmd.OutOrStdout()
	switch output {
	case config.OutputJSON:
		err = report.JSON(out, attemptID, result)
	default:
		err = report.Render(out, result, c.cfg.Color)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if failOnFail, _ := cmd.Flags().GetBool("fail-on-fail"); failOnFail && !result.Passed {
		return ErrAttemptFailed
	}
	return nil
}
