package lambda

// Deparameterize expands the "*x" parameterize sugar: wherever a node has
// Parameterized set, that subtree is replaced by count copies, left-
// associated via Application (spec.md §4.8). The returned node always has
// Parameterized cleared (I6).
//
// With count == 1 a parameterized node expands to zero additional copies
// (the loop runs count-1 times), matching the original C implementation's
// "while (--count)" exactly; see DESIGN.md / SPEC_FULL.md §11 for why this
// asymmetry is kept rather than "fixed".
func Deparameterize(node *Expression, count int) *Expression {
	var r *Expression
	switch node.Kind {
	case VariableKind:
		r = node
		if r.Parameterized {
			original := node
			r.Parameterized = false
			for n := count; n > 1; n-- {
				r = Application(r, Copy(original))
			}
		}
	case ApplicationKind:
		r = node
		if r.Parameterized {
			original := node
			r.Parameterized = false
			for n := count; n > 1; n-- {
				r = Application(r, Copy(original))
			}
			node = r
		}
		if node.Rator.Parameterized {
			// rator (rator (rator (... (rator rand)...)
			tree := Deparameterize(node.Rand, count)
			node.Rator.Parameterized = false
			for n := count; n > 1; n-- {
				tree = Application(Copy(node.Rator), tree)
			}
			node.Rand = tree
			r = node
		} else {
			node.Rand = Deparameterize(node.Rand, count)
			node.Rator = Deparameterize(node.Rator, count)
			r = node
		}
	case AbstractionKind:
		node.Body = Deparameterize(node.Body, count)
		r = node
		if r.Parameterized {
			original := r
			r.Parameterized = false
			for n := count; n > 1; n-- {
				r = Application(r, Copy(original))
			}
		}
	default:
		panic("lambda: malformed expression: unknown kind in Deparameterize")
	}
	r.Parameterized = false
	return r
}

// Goedelize implements Mogensen's self-interpretation encoding (spec.md
// §4.9, "Efficient Self Interpretation in Lambda Calculus"). For each
// variant it picks three fresh identifiers a, b, c distinct from e's free
// variables and from each other, allocating each into the forbidden set as
// it is picked.
func Goedelize(e *Expression) *Expression {
	bound := NewVarSet()
	forbidden := NewVarSet()
	FindFreeVars(e, bound, forbidden)

	switch e.Kind {
	case VariableKind:
		a, b, c := freshTriple(forbidden)
		return Abstraction(a, Abstraction(b, Abstraction(c,
			Application(Variable(a), Variable(e.Name)),
		)))
	case ApplicationKind:
		a, b, c := freshTriple(forbidden)
		return Abstraction(a, Abstraction(b, Abstraction(c,
			Application(
				Application(Variable(b), Goedelize(e.Rator)),
				Goedelize(e.Rand),
			),
		)))
	case AbstractionKind:
		forbidden.Insert(e.Bound, e.Bound)
		a, b, c := freshTriple(forbidden)
		return Abstraction(a, Abstraction(b, Abstraction(c,
			Application(Variable(c), Abstraction(e.Bound, Goedelize(e.Body))),
		)))
	default:
		panic("lambda: malformed expression: unknown kind in Goedelize")
	}
}

// freshTriple picks three identifiers distinct from forbidden and from each
// other, inserting each into forbidden as it is chosen.
func freshTriple(forbidden *VarSet) (a, b, c *Identifier) {
	a = FindNonfreeVar(forbidden)
	forbidden.Insert(a, a)
	b = FindNonfreeVar(forbidden)
	forbidden.Insert(b, b)
	c = FindNonfreeVar(forbidden)
	forbidden.Insert(c, c)
	return a, b, c
}
