package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/bediger4000/lambda-calculator/internal/repl"
)

var flags = struct {
	batchFile  string
	eta        bool
	trace      bool
	step       bool
	lambdaChar string
	logLevel   string
}{}

var rootCmd = &cobra.Command{
	Use:   "lc",
	Short: "Interactive interpreter for the untyped lambda calculus",
	Long: `lc evaluates lambda calculus expressions using destructive normal-order
reduction with capture-avoiding substitution. Run without arguments for an
interactive prompt, or with --batch to run a script non-interactively.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().StringVar(&flags.batchFile, "batch", "", "run commands from FILE non-interactively instead of starting the REPL")
	rootCmd.Flags().BoolVar(&flags.eta, "eta", false, "enable eta reduction at startup")
	rootCmd.Flags().BoolVar(&flags.trace, "trace", false, "trace each substitution step at startup")
	rootCmd.Flags().BoolVar(&flags.step, "step", false, "single-step each substitution at startup")
	rootCmd.Flags().StringVar(&flags.lambdaChar, "lambda-char", "%", "character printed before an abstraction's bound variable")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "warn", "diagnostic log level: trace|debug|info|warn|error")
}

func runRoot(cmd *cobra.Command, args []string) error {
	lambdaChar := rune('%')
	if flags.lambdaChar != "" {
		lambdaChar = []rune(flags.lambdaChar)[0]
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "lc",
		Level:  hclog.LevelFromString(flags.logLevel),
		Output: os.Stderr,
	})

	session := repl.NewSession(repl.Options{
		LambdaChar: lambdaChar,
		EtaStart:   flags.eta,
		Logger:     logger,
		Stdout:     os.Stdout,
	})
	if flags.trace {
		session.Eval("startup", ":trace on")
	}
	if flags.step {
		session.Eval("startup", ":step on")
	}

	if flags.batchFile != "" {
		f, err := os.Open(flags.batchFile)
		if err != nil {
			return fmt.Errorf("opening batch file: %w", err)
		}
		defer f.Close()
		if n := session.RunBatch(f); n > 0 {
			return fmt.Errorf("%d error(s) while running %s", n, flags.batchFile)
		}
		return nil
	}

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = home + "/.lc_history"
	}
	return session.Run("lc> ", historyFile)
}

// Execute runs the root command and returns any error it produced; cobra's
// own error printing is silenced, so main writes the error to stderr.
func Execute() error {
	return rootCmd.Execute()
}
