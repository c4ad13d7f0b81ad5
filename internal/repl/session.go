// Package repl drives the interactive and batch front ends for the
// interpreter: reading lines, dispatching ':'-commands, and running
// definitions and expressions through the lambda package's reduction
// engine. This mirrors the split the teacher's Engine.Process/Assert/
// Retract/Query entry points use for a line-oriented interpreter loop.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/bediger4000/lambda-calculator/internal/syntax"
	"github.com/bediger4000/lambda-calculator/lambda"
)

// Options configures a Session at construction time.
type Options struct {
	LambdaChar rune
	EtaStart   bool
	Logger     hclog.Logger
	Stdout     io.Writer
}

// Session owns one interpreter's worth of process-lifetime state: the
// reduction Config, the abbreviation table, and the parser and I/O the
// core never sees directly (spec.md §6 keeps those as host concerns).
type Session struct {
	cfg     *lambda.Config
	abbrevs *lambda.AbbrevTable
	parser  *syntax.Parser
	printer *lambda.Printer
	logger  hclog.Logger
	out     io.Writer
	interrupted int32

	errColor  *color.Color
	warnColor *color.Color
	okColor   *color.Color
}

// NewSession builds a Session ready to Run or RunBatch.
func NewSession(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	printer := &lambda.Printer{LambdaChar: byte(opts.LambdaChar)}
	abbrevs := lambda.NewAbbrevTable()

	s := &Session{
		abbrevs: abbrevs,
		parser:  &syntax.Parser{LambdaChar: opts.LambdaChar, Abbrevs: abbrevs},
		printer: printer,
		logger:  opts.Logger,
		out:     opts.Stdout,

		errColor:  color.New(color.FgRed),
		warnColor: color.New(color.FgYellow),
		okColor:   color.New(color.FgGreen),
	}
	s.cfg = &lambda.Config{
		EtaReduction: opts.EtaStart,
		Interrupted:  &s.interrupted,
		IO:           s,
		Printer:      printer,
	}
	return s
}

// Print implements lambda.IO, used by Substitute's trace/step hooks.
func (s *Session) Print(line string) {
	fmt.Fprintln(s.out, line)
}

// ReadLine implements lambda.IO's single-step pause.
func (s *Session) ReadLine() string {
	var line string
	fmt.Fscanln(os.Stdin, &line)
	return line
}

// installSignalHandler arms a SIGINT handler that flips cfg.Interrupted,
// restoring the original binary's sigint_handler behavior (spec.md §5 and
// §8 scenario S2) without making the core aware of os/signal at all. It
// returns a function that disarms the handler.
func (s *Session) installSignalHandler() func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGINT)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				atomic.StoreInt32(&s.interrupted, 1)
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}

// resetInterrupt clears the interrupt flag before each new top-level
// reduction so an earlier interrupt doesn't short-circuit the next one.
func (s *Session) resetInterrupt() {
	atomic.StoreInt32(&s.interrupted, 0)
}

// Run drives the interactive REPL using github.com/chzyer/readline for line
// editing and history.
func (s *Session) Run(prompt, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	disarm := s.installSignalHandler()
	defer disarm()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		s.resetInterrupt()
		s.Eval("repl", line)
	}
}

// RunBatch reads newline-separated commands and expressions from r
// non-interactively, sharing the exact same Eval path the interactive loop
// uses (SPEC_FULL.md §8's restored batch mode).
func (s *Session) RunBatch(r io.Reader) (errorCount int) {
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.resetInterrupt()
		if !s.Eval(fmt.Sprintf("batch:%d", i), line) {
			errorCount++
		}
	}
	return errorCount
}

// Eval processes one line of input: a ':'-command, a definition, or an
// expression to reduce and print. It reports whether the line was handled
// without error.
func (s *Session) Eval(source, line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(trimmed, ":") {
		return s.dispatchCommand(trimmed)
	}

	stmt, err := s.parser.ParseLine(source, line)
	if err != nil {
		s.reportError(err)
		return false
	}

	if stmt.IsDefinition() {
		if prior := s.abbrevs.Insert(stmt.Name, stmt.Expr); prior != nil {
			s.logger.Warn("redefined abbreviation", "name", stmt.Name)
			fmt.Fprintln(s.out, s.warnColor.Sprintf("%s redefined", stmt.Name))
			return true
		}
		s.printOK(stmt.Name + " defined")
		return true
	}

	result := lambda.NormalOrderReduction(s.cfg, stmt.Expr)
	s.Print(s.printer.Sprint(result))
	return true
}

func (s *Session) reportError(err error) {
	s.logger.Warn(err.Error())
	fmt.Fprintln(s.out, s.errColor.Sprint(err.Error()))
}

func (s *Session) printOK(msg string) {
	fmt.Fprintln(s.out, s.okColor.Sprint(msg))
}
