package lambda

import "fmt"

// FindFreeVars walks term, inserting into out every variable not bound
// within term by an enclosing abstraction already recorded in
// currentlyBound. currentlyBound is restored to its entry state on return:
// a binder is only kept in the set while its body is being walked, and is
// removed afterward unless it was already present (the shadowing case),
// matching spec.md §4.4 exactly.
func FindFreeVars(term *Expression, currentlyBound, out *VarSet) {
	switch term.Kind {
	case VariableKind:
		if _, bound := currentlyBound.Lookup(term.Name); !bound {
			out.Insert(term.Name, term.Name)
		}
	case ApplicationKind:
		FindFreeVars(term.Rator, currentlyBound, out)
		FindFreeVars(term.Rand, currentlyBound, out)
	case AbstractionKind:
		_, previouslyBound := currentlyBound.Insert(term.Bound, term.Bound)
		FindFreeVars(term.Body, currentlyBound, out)
		if !previouslyBound {
			currentlyBound.Remove(term.Bound)
		}
	default:
		panic("lambda: malformed expression: unknown kind in FindFreeVars")
	}
}

// FreeVars returns the set of term's free variables.
func FreeVars(term *Expression) *VarSet {
	out := NewVarSet()
	FindFreeVars(term, NewVarSet(), out)
	return out
}

// FindBoundVars collects every binder's name in term into bound. Unlike
// FindFreeVars there is no shadowing handling: the result is the union of
// all binder names anywhere in term.
func FindBoundVars(term *Expression, bound *VarSet) {
	switch term.Kind {
	case VariableKind:
		// no binder here
	case ApplicationKind:
		FindBoundVars(term.Rator, bound)
		FindBoundVars(term.Rand, bound)
	case AbstractionKind:
		bound.Insert(term.Bound, term.Bound)
		FindBoundVars(term.Body, bound)
	default:
		panic("lambda: malformed expression: unknown kind in FindBoundVars")
	}
}

// BoundVars returns the set of every name bound anywhere in term.
func BoundVars(term *Expression) *VarSet {
	bound := NewVarSet()
	FindBoundVars(term, bound)
	return bound
}

// FindNonfreeVar returns an identifier interned via Atoms that is distinct
// from every key of forbidden. Search order: single letters a..z, then A..Z.
//
// The original C implementation (find_nonfree_var in lambda_expression.c)
// only searches those 52 single-character names and loops forever if all of
// them are forbidden (spec.md §9, open question). This implementation
// extends the search past that point by pairing each letter with an
// increasing decimal suffix: a1, b1, ..., Z1, a2, b2, ..., so it always
// terminates for any finite forbidden set.
func FindNonfreeVar(forbidden *VarSet) *Identifier {
	if id, ok := tryLetters(forbidden, ""); ok {
		return id
	}
	for suffix := 1; ; suffix++ {
		if id, ok := tryLetters(forbidden, fmt.Sprintf("%d", suffix)); ok {
			return id
		}
	}
}

func tryLetters(forbidden *VarSet, suffix string) (*Identifier, bool) {
	for c := 'a'; c <= 'z'; c++ {
		if id, ok := tryCandidate(forbidden, string(c)+suffix); ok {
			return id, true
		}
	}
	for c := 'A'; c <= 'Z'; c++ {
		if id, ok := tryCandidate(forbidden, string(c)+suffix); ok {
			return id, true
		}
	}
	return nil, false
}

func tryCandidate(forbidden *VarSet, name string) (*Identifier, bool) {
	candidate := Atoms.Intern(name)
	if _, taken := forbidden.Lookup(candidate); !taken {
		return candidate, true
	}
	return nil, false
}
