package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bediger4000/lambda-calculator/lambda"
)

// dispatchCommand handles a leading-':' line. The grammar here is
// deliberately outside internal/syntax's expression grammar (spec.md's
// component design scopes the lexer/parser to expressions and
// definitions only); commands are simple whitespace-split directives, the
// same shape the original binary's command surface used.
func (s *Session) dispatchCommand(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case ":trace":
		return s.toggle(&s.cfg.TraceEval, args, "trace")
	case ":step":
		return s.toggle(&s.cfg.SingleStep, args, "single-step")
	case ":eta":
		return s.toggle(&s.cfg.EtaReduction, args, "eta reduction")
	case ":free":
		return s.printVarSet(strings.Join(args, " "), lambda.FreeVars, "free")
	case ":bound":
		return s.printVarSet(strings.Join(args, " "), lambda.BoundVars, "bound")
	case ":deparam":
		return s.deparam(args)
	case ":godel":
		return s.godel(strings.Join(args, " "))
	default:
		s.reportError(fmt.Errorf("unknown command %q", cmd))
		return false
	}
}

func (s *Session) toggle(flag *bool, args []string, label string) bool {
	if len(args) == 0 {
		*flag = !*flag
	} else {
		switch args[0] {
		case "on":
			*flag = true
		case "off":
			*flag = false
		default:
			s.reportError(fmt.Errorf("%s: expected 'on' or 'off', got %q", label, args[0]))
			return false
		}
	}
	state := "off"
	if *flag {
		state = "on"
	}
	s.printOK(label + " " + state)
	return true
}

func (s *Session) printVarSet(exprText string, collect func(*lambda.Expression) *lambda.VarSet, label string) bool {
	stmt, err := s.parser.ParseLine(":"+label, exprText)
	if err != nil {
		s.reportError(err)
		return false
	}
	set := collect(stmt.Expr)
	names := make([]string, 0, set.Len())
	for _, id := range set.Keys() {
		names = append(names, id.String())
	}
	s.Print(strings.Join(names, " "))
	return true
}

// deparam handles ":deparam <expr> <count>", exposing
// lambda.Deparameterize directly (SPEC_FULL.md §8).
func (s *Session) deparam(args []string) bool {
	if len(args) < 2 {
		s.reportError(fmt.Errorf(":deparam requires an expression and a count"))
		return false
	}
	count, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		s.reportError(fmt.Errorf(":deparam count must be an integer: %w", err))
		return false
	}
	stmt, err := s.parser.ParseLine(":deparam", strings.Join(args[:len(args)-1], " "))
	if err != nil {
		s.reportError(err)
		return false
	}
	stmt.Expr.Parameterized = true
	result := lambda.Deparameterize(stmt.Expr, count)
	s.Print(s.printer.Sprint(result))
	return true
}

// godel handles ":godel <expr>", exposing lambda.Goedelize (SPEC_FULL.md §8).
func (s *Session) godel(exprText string) bool {
	stmt, err := s.parser.ParseLine(":godel", exprText)
	if err != nil {
		s.reportError(err)
		return false
	}
	result := lambda.Goedelize(stmt.Expr)
	s.Print(s.printer.Sprint(result))
	return true
}
