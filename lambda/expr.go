package lambda

import "fmt"

// Kind distinguishes the three Expression variants.
type Kind int

const (
	// VariableKind marks a bare reference to a bound or free name.
	VariableKind Kind = iota
	// AbstractionKind marks a function: a binder plus a body.
	AbstractionKind
	// ApplicationKind marks a function applied to an argument.
	ApplicationKind
)

func (k Kind) String() string {
	switch k {
	case VariableKind:
		return "Variable"
	case AbstractionKind:
		return "Abstraction"
	case ApplicationKind:
		return "Application"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Expression is a node of the lambda calculus AST. It is a tagged union: the
// fields that matter depend on Kind, per the Variable/Abstraction/Application
// variants of spec.md §3.
//
//	Kind == VariableKind:    Name is set, Bound/Body/Rator/Rand unused.
//	Kind == AbstractionKind: Bound and Body are set.
//	Kind == ApplicationKind: Rator and Rand are set.
//
// Every non-leaf expression uniquely owns its children: Copy produces a
// fully disjoint duplicate, and the reduction driver performs destructive,
// in-place rewrites that replace whole children rather than mutate shared
// state (I4).
type Expression struct {
	Kind Kind

	// VariableKind
	Name *Identifier

	// AbstractionKind
	Bound *Identifier
	Body  *Expression

	// ApplicationKind
	Rator *Expression
	Rand  *Expression

	// Parameterized marks a subtree that Deparameterize should expand into
	// repeated applications (§4.8). False everywhere outside that transform,
	// and always false on any tree returned from NormalOrderReduction (I6).
	Parameterized bool
}

// Variable builds a leaf node referencing name.
func Variable(name *Identifier) *Expression {
	return &Expression{Kind: VariableKind, Name: name}
}

// Abstraction builds a function binding bound in body.
func Abstraction(bound *Identifier, body *Expression) *Expression {
	return &Expression{Kind: AbstractionKind, Bound: bound, Body: body}
}

// Application builds rator applied to rand.
func Application(rator, rand *Expression) *Expression {
	return &Expression{Kind: ApplicationKind, Rator: rator, Rand: rand}
}

// Copy returns a structurally identical, fully disjoint duplicate of e,
// including its Parameterized flag. Copy(nil) returns nil.
func Copy(e *Expression) *Expression {
	if e == nil {
		return nil
	}
	var r *Expression
	switch e.Kind {
	case VariableKind:
		r = Variable(e.Name)
	case ApplicationKind:
		r = Application(Copy(e.Rator), Copy(e.Rand))
	case AbstractionKind:
		r = Abstraction(e.Bound, Copy(e.Body))
	default:
		panic("lambda: malformed expression: unknown kind in Copy")
	}
	r.Parameterized = e.Parameterized
	return r
}

// Logger receives diagnostics from operations, such as Free, that the C
// original reported straight to stderr. A nil Logger silently drops them.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Free releases expression and, recursively, everything it owns. Go's
// garbage collector reclaims the memory regardless, but Free is kept as a
// real, callable operation (rather than elided) so that the reduction
// driver's eta-detach protocol (§4.7, §9) has the same ownership-transfer
// shape as the original, and so that calling it on nil remains a well
// defined, testable soft error rather than undefined behavior.
//
// Calling Free with a nil expression logs through logger (if non-nil) and
// is not fatal.
func Free(e *Expression, logger Logger) {
	if e == nil {
		if logger != nil {
			logger.Warnf("lambda: freeing a nil expression node")
		}
		return
	}
	switch e.Kind {
	case VariableKind:
		e.Name = nil
	case ApplicationKind:
		if e.Rator != nil {
			Free(e.Rator, logger)
		}
		e.Rator = nil
		if e.Rand != nil {
			Free(e.Rand, logger)
		}
		e.Rand = nil
	case AbstractionKind:
		e.Bound = nil
		if e.Body != nil {
			Free(e.Body, logger)
		}
		e.Body = nil
	}
}
