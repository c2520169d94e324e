// Package logging wires glog into the cobra command line and holds the log
// lines shared by the quiz front ends.
//
// glog writes to files under the temp directory unless -logtostderr is set,
// which keeps the terminal form's screen free of log output.
package logging

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/abhisek/pwaquiz/internal/config"
	"github.com/abhisek/pwaquiz/internal/quiz"
)

// AddFlags exposes glog's flags (-v, -logtostderr, -log_dir, ...) on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.AddGoFlagSet(goflag.CommandLine)
}

// Init applies cfg to glog once the command line has been parsed. An
// explicit --log_dir wins over cfg.LogDir.
func Init(cfg config.Config, fs *pflag.FlagSet) error {
	if cfg.LogDir != "" && !fs.Changed("log_dir") {
		if err := goflag.Set("log_dir", cfg.LogDir); err != nil {
			return fmt.Errorf("set log_dir: %w", err)
		}
	}
	if dir := goflag.Lookup("log_dir"); dir != nil && dir.Value.String() != "" {
		// glog exits the process when it cannot create its log file.
		if err := os.MkdirAll(dir.Value.String(), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}

	// Values already arrived through pflag; this only marks the go flag set
	// as parsed for glog.
	if err := goflag.CommandLine.Parse(nil); err != nil {
		return fmt.Errorf("parse log flags: %w", err)
	}
	return nil
}

// Flush writes any buffered log lines.
func Flush() {
	glog.Flush()
}

// Attempt records one graded submission.
func Attempt(source, attemptID string, r quiz.QuizResult) {
	glog.Infof("attempt %s via %s: score %d/%d (%d%%), %d/%d correct, passed=%t",
		attemptID, source, r.TotalScore, r.MaxScore, r.Percentage(),
		r.CorrectCount(), len(r.Questions), r.Passed)
	if glog.V(2) {
		for _, q := range r.Questions {
			glog.Infof("attempt %s question %d: correct=%t score=%d/%d answer=%q",
				attemptID, q.QuestionNum, q.Correct, q.Score, q.MaxScore, q.UserAnswer)
		}
	}
}
