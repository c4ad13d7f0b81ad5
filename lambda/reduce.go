package lambda

import "sync/atomic"

// slot identifies the owning location of a subtree so the reduction driver
// can replace it in place: either the root handle itself, or a named child
// field of some live parent expression. This reifies the C original's
// "pointer to parent slot" (a struct lambda_expression **) as the design
// notes suggest, since Go has no address-of-a-struct-field-through-an-
// interface operation that would let us hand back a raw pointer to an
// arbitrary field.
type slot struct {
	set func(*Expression)
}

func rootSlot(e **Expression) slot {
	return slot{set: func(v *Expression) { *e = v }}
}

func ratorSlot(parent *Expression) slot {
	return slot{set: func(v *Expression) { parent.Rator = v }}
}

func randSlot(parent *Expression) slot {
	return slot{set: func(v *Expression) { parent.Rand = v }}
}

func bodySlot(parent *Expression) slot {
	return slot{set: func(v *Expression) { parent.Body = v }}
}

type redexKind int

const (
	betaRedex redexKind = iota
	etaRedex
)

// redex describes a located reduction site: found, its kind, the slot that
// owns it, and (for beta) the matched application or (for eta) the detached
// replacement subtree.
type redex struct {
	found       bool
	kind        redexKind
	at          slot
	application *Expression // beta: the (abstraction arg) application
	replacement *Expression // eta: the already-detached rator to splice in
}

// findRedex performs the leftmost-outermost (normal order) search described
// in spec.md §4.7: depth-first, preferring an abstraction's eta redex over
// recursing into its body, and preferring rator over rand within an
// application whose head is not itself an abstraction.
func findRedex(cfg *Config, e *Expression, at slot) redex {
	switch e.Kind {
	case VariableKind:
		return redex{}
	case AbstractionKind:
		if cfg != nil && cfg.EtaReduction && e.Body.Kind == ApplicationKind {
			inner := e.Body
			if inner.Rand.Kind == VariableKind && inner.Rand.Name == e.Bound {
				fOfBody := FreeVars(inner.Rator)
				if _, occurs := fOfBody.Lookup(e.Bound); !occurs {
					// Detach rator from the soon-to-be-discarded abstraction
					// shell before the caller frees it, so Free never walks
					// into the subtree that is about to become the
					// replacement (spec.md §4.7, eta detach protocol).
					replacement := inner.Rator
					inner.Rator = nil
					return redex{found: true, kind: etaRedex, at: at, application: e, replacement: replacement}
				}
			}
		}
		return findRedex(cfg, e.Body, bodySlot(e))
	case ApplicationKind:
		if e.Rator.Kind == AbstractionKind {
			return redex{found: true, kind: betaRedex, at: at, application: e}
		}
		if r := findRedex(cfg, e.Rator, ratorSlot(e)); r.found {
			return r
		}
		return findRedex(cfg, e.Rand, randSlot(e))
	default:
		panic("lambda: malformed expression: unknown kind in findRedex")
	}
}

// interrupted reports whether the host has asked the driver to stop.
func interrupted(cfg *Config) bool {
	return cfg != nil && cfg.Interrupted != nil && atomic.LoadInt32(cfg.Interrupted) != 0
}

// NormalOrderReduction reduces expr to normal form using leftmost-outermost
// (normal order) beta reduction, and eta reduction when cfg.EtaReduction is
// set, rewriting destructively in place (spec.md §4.7). It loops until no
// redex remains or the host interrupts it, at which point it returns
// whatever tree is current. Termination is not guaranteed: the lambda
// calculus is not terminating, and the driver imposes no step limit.
func NormalOrderReduction(cfg *Config, expr *Expression) *Expression {
	root := expr
	// No node of the returned tree is left Parameterized (I6).
	var clearFlags func(e *Expression)
	clearFlags = func(e *Expression) {
		if e == nil {
			return
		}
		e.Parameterized = false
		clearFlags(e.Rator)
		clearFlags(e.Rand)
		clearFlags(e.Body)
	}
	defer func() { clearFlags(root) }()
	for {
		if interrupted(cfg) {
			return root
		}

		r := findRedex(cfg, root, rootSlot(&root))
		if !r.found {
			return root
		}

		switch r.kind {
		case betaRedex:
			app := r.application
			abstr := app.Rator
			result := Substitute(cfg, app.Rand, abstr.Bound, abstr.Body)
			Free(app, nil)
			r.at.set(result)
		case etaRedex:
			Free(r.application, nil)
			r.at.set(r.replacement)
		}
	}
}
