package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/pwaquiz/internal/app"
	"github.com/abhisek/pwaquiz/internal/config"
	"github.com/abhisek/pwaquiz/internal/logging"
	"github.com/abhisek/pwaquiz/internal/quiz"
)

// cli holds what the persistent pre-run resolves for every subcommand.
type cli struct {
	cfg config.Config
	key *quiz.AnswerKey
}

func newRootCmd() *cobra.Command {
	c := &cli{key: quiz.DefaultKey()}

	rootCmd := &cobra.Command{
		Use:   "pwaquiz",
		Short: "Progressive Web Apps quiz",
		Long: "pwaquiz asks five questions about Progressive Web Apps, grades the answers " +
			"and reports the score. 21 of 30 points (70%) passes.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return logging.Init(cfg, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApp(cmd)
		},
	}

	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "Path to a .env file with PWAQUIZ_* settings")
	rootCmd.PersistentFlags().Bool("no-splash", false, "Skip the welcome screen")
	logging.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newPlayCmd(c))
	rootCmd.AddCommand(newGradeCmd(c))
	rootCmd.AddCommand(newQuestionsCmd(c))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}

// runApp launches the terminal form.
func (c *cli) runApp(cmd *cobra.Command) error {
	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Grader:    quiz.NewGrader(c.key),
		AltScreen: c.cfg.AltScreen,
		Splash:    !noSplash,
	})
}
