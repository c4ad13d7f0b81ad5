package lambda

import "fmt"

// Equivalent reports whether p and q have the same tag at every node and
// pointwise-identical identifiers for variables and binders, with
// structurally equivalent children. No renaming is performed: this is plain
// tree equality, not alpha-equivalence.
func Equivalent(p, q *Expression) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.Kind != q.Kind {
		return false
	}
	switch p.Kind {
	case VariableKind:
		return p.Name == q.Name
	case ApplicationKind:
		return Equivalent(p.Rator, q.Rator) && Equivalent(p.Rand, q.Rand)
	case AbstractionKind:
		return p.Bound == q.Bound && Equivalent(p.Body, q.Body)
	default:
		panic("lambda: malformed expression: unknown kind in Equivalent")
	}
}

// AlphaEquivalent reports whether p and q are equal up to consistent
// renaming of bound variables (spec.md §4.10).
func AlphaEquivalent(p, q *Expression) bool {
	map1 := NewVarSet()
	map2 := NewVarSet()
	return alphaEquivalent(p, map1, q, map2, 0)
}

func alphaEquivalent(p *Expression, map1 *VarSet, q *Expression, map2 *VarSet, abstractionCount int) bool {
	if p.Kind != q.Kind {
		return false
	}
	switch p.Kind {
	case ApplicationKind:
		return alphaEquivalent(p.Rator, map1, q.Rator, map2, abstractionCount) &&
			alphaEquivalent(p.Rand, map1, q.Rand, map2, abstractionCount)
	case VariableKind:
		x1, bound1 := map1.Lookup(p.Name)
		x2, bound2 := map2.Lookup(q.Name)
		switch {
		case bound1 && bound2:
			return x1 == x2
		case !bound1 && !bound2:
			return p.Name == q.Name
		default:
			return false
		}
	case AbstractionKind:
		abstractionCount++
		mock := determineBinding(p.Bound, abstractionCount)

		oldMock1, had1 := map1.Lookup(p.Bound)
		oldMock2, had2 := map2.Lookup(q.Bound)

		map1.Insert(p.Bound, mock)
		map2.Insert(q.Bound, mock)

		r := alphaEquivalent(p.Body, map1, q.Body, map2, abstractionCount)

		map1.Remove(p.Bound)
		map2.Remove(q.Bound)
		if had1 {
			map1.Insert(p.Bound, oldMock1)
		}
		if had2 {
			map2.Insert(q.Bound, oldMock2)
		}
		return r
	default:
		panic("lambda: malformed expression: unknown kind in AlphaEquivalent")
	}
}

// determineBinding derives a shared "mock" binding token for a binder name
// at a given abstraction depth, of the form ".<spelling>_<n>". Because it is
// interned, two calls with the same spelling and count produce an identical
// pointer, which is exactly the property alphaEquivalent needs.
func determineBinding(bound *Identifier, abstractionCount int) *Identifier {
	return Atoms.Intern(fmt.Sprintf(".%s_%d", bound.String(), abstractionCount))
}
