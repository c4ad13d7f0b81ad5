package lambda

import "bytes"

// Printer renders expressions to text with minimal parenthesization. The
// zero value is ready to use and matches the original interpreter's
// defaults: lambda character '%', delimiter ".".
type Printer struct {
	// LambdaChar is the character printed before an abstraction's bound
	// variable. Defaults to '%' when zero.
	LambdaChar byte
	// AbstractionDelimiter separates an abstraction's binder from its body.
	// Defaults to "." when empty.
	AbstractionDelimiter string
}

// DefaultPrinter is the package-level printer used by Sprint and Fprint. Its
// fields may be changed at process startup (spec.md §4.3: "process-level
// configuration set before use").
var DefaultPrinter = &Printer{LambdaChar: '%', AbstractionDelimiter: "."}

func (p *Printer) lambdaChar() byte {
	if p.LambdaChar == 0 {
		return '%'
	}
	return p.LambdaChar
}

func (p *Printer) delimiter() string {
	if p.AbstractionDelimiter == "" {
		return "."
	}
	return p.AbstractionDelimiter
}

// Buffer appends e's canonical textual form to buf. A nil expression prints
// the literal "NULL"; this path is only reachable from diagnostic callers,
// since well-formed trees never contain a nil Expression pointer where one
// is expected (I1-I3).
func (p *Printer) Buffer(e *Expression, buf *bytes.Buffer) {
	if e == nil {
		buf.WriteString("NULL")
		return
	}
	if e.Parameterized {
		buf.WriteString("*(")
	}
	switch e.Kind {
	case VariableKind:
		buf.WriteString(e.Name.String())
	case ApplicationKind:
		parenRator := e.Rator != nil && e.Rator.Kind == AbstractionKind
		if parenRator {
			buf.WriteByte('(')
		}
		p.Buffer(e.Rator, buf)
		if parenRator {
			buf.WriteByte(')')
		}
		buf.WriteByte(' ')
		parenRand := e.Rand == nil || e.Rand.Kind != VariableKind
		if parenRand {
			buf.WriteByte('(')
		}
		p.Buffer(e.Rand, buf)
		if parenRand {
			buf.WriteByte(')')
		}
	case AbstractionKind:
		buf.WriteByte(p.lambdaChar())
		buf.WriteString(e.Bound.String())
		buf.WriteString(p.delimiter())
		p.Buffer(e.Body, buf)
	default:
		panic("lambda: malformed expression: unknown kind in Buffer")
	}
	if e.Parameterized {
		buf.WriteByte(')')
	}
}

// Sprint renders e using p and returns the result as a string.
func (p *Printer) Sprint(e *Expression) string {
	var buf bytes.Buffer
	p.Buffer(e, &buf)
	return buf.String()
}

// Sprint renders e with DefaultPrinter.
func Sprint(e *Expression) string {
	return DefaultPrinter.Sprint(e)
}

// BufferExpression appends e's textual form to buf using DefaultPrinter.
func BufferExpression(e *Expression, buf *bytes.Buffer) {
	DefaultPrinter.Buffer(e, buf)
}
