package lambda

import "bytes"

// IO carries the host's line-based input/output for single-stepping and
// trace output (spec.md §6). A nil IO disables tracing/stepping regardless
// of Config's flags.
type IO interface {
	Print(line string)
	ReadLine() string
}

// Config carries the process-lifetime flags spec.md §6 describes as
// read by substitution and the reduction driver. Unlike the C original,
// which keeps these as file-scope globals, the core takes Config
// explicitly: nothing here requires global mutable state, only that these
// settings are visible to Substitute and NormalOrderReduction.
type Config struct {
	// TraceEval prints each substitution step through IO before and after
	// the work is done.
	TraceEval bool
	// SingleStep pauses for a line of input (via IO.ReadLine) before and
	// after each substitution step.
	SingleStep bool
	// EtaReduction enables eta-redex search in NormalOrderReduction.
	EtaReduction bool
	// Interrupted is read by NormalOrderReduction between redex rewrites. A
	// nil Interrupted means the driver can never be interrupted. Written by
	// the host (e.g. a SIGINT handler) with atomic.StoreInt32.
	Interrupted *int32
	IO          IO
	Printer     *Printer
}

func (c *Config) printer() *Printer {
	if c != nil && c.Printer != nil {
		return c.Printer
	}
	return DefaultPrinter
}

func (c *Config) tracing() bool {
	return c != nil && c.TraceEval && c.IO != nil
}

func (c *Config) stepping() bool {
	return c != nil && c.SingleStep && c.IO != nil
}

// Substitute returns the result of substituting term for every free
// occurrence of target in inExpr, avoiding variable capture (spec.md §4.6).
// The returned expression is always a freshly built tree; the inputs are
// left untouched.
//
// If cfg enables tracing, Substitute prints "Substitute (term) for target in
// (inExpr)" before the work and "Substitution: (result)" after, both via
// cfg.IO.Print. If cfg enables single-stepping, it additionally blocks on
// cfg.IO.ReadLine before and after.
func Substitute(cfg *Config, term *Expression, target *Identifier, inExpr *Expression) *Expression {
	if cfg.tracing() {
		p := cfg.printer()
		var a, b bytes.Buffer
		p.Buffer(term, &a)
		p.Buffer(inExpr, &b)
		cfg.IO.Print("Substitute (" + a.String() + ") for " + target.String() + " in (" + b.String() + ")")
	}
	if cfg.stepping() {
		cfg.IO.ReadLine()
	}

	r := realSubstitute(term, target, inExpr)

	if cfg.tracing() {
		var a bytes.Buffer
		cfg.printer().Buffer(r, &a)
		cfg.IO.Print("Substitution: (" + a.String() + ")")
	}
	if cfg.stepping() {
		cfg.IO.ReadLine()
	}

	return r
}

// realSubstitute performs the actual capture-avoiding substitution,
// recursing without any trace/step side effects.
func realSubstitute(term *Expression, target *Identifier, inExpr *Expression) *Expression {
	switch inExpr.Kind {
	case VariableKind:
		if inExpr.Name == target {
			return Copy(term)
		}
		return Variable(inExpr.Name)
	case ApplicationKind:
		return Application(
			realSubstitute(term, target, inExpr.Rator),
			realSubstitute(term, target, inExpr.Rand),
		)
	case AbstractionKind:
		return abstractionSubstitution(term, target, inExpr)
	default:
		panic("lambda: malformed expression: unknown kind in Substitute")
	}
}

// abstractionSubstitution implements the ABSTRACTION case of real_substitute
// (spec.md §4.6): shadowing, capture-free rewrite, and capture-avoiding
// renaming.
func abstractionSubstitution(term *Expression, target *Identifier, abstr *Expression) *Expression {
	if abstr.Bound == target {
		// The binder shadows the target: term can't reach any occurrence of
		// target inside abstr's body, so abstr is returned unchanged.
		return Copy(abstr)
	}

	termFree := FreeVars(term)
	if _, captured := termFree.Lookup(abstr.Bound); !captured {
		return Abstraction(abstr.Bound, realSubstitute(term, target, abstr.Body))
	}

	// abstr.Bound occurs free in term: renaming the binder to something
	// outside FV(term) u FV(abstr.Body) avoids capturing it.
	forbidden := termFree
	FindFreeVars(abstr.Body, NewVarSet(), forbidden)
	freshBound := FindNonfreeVar(forbidden)

	freshVar := Variable(freshBound)
	renamedBody := realSubstitute(freshVar, abstr.Bound, abstr.Body)
	renamedAbstr := Abstraction(freshBound, renamedBody)

	return realSubstitute(term, target, renamedAbstr)
}
