package lambda

// VarSet is a small, short-lived mapping from an interned identifier to an
// opaque tag. It backs free-variable computation, alpha-equivalence
// tracking, and fresh-name generation. It is not safe for concurrent use;
// instances are created and discarded within a single traversal.
type VarSet struct {
	entries map[*Identifier]interface{}
}

// NewVarSet returns an empty variable set.
func NewVarSet() *VarSet {
	return &VarSet{entries: make(map[*Identifier]interface{})}
}

// Insert associates id with value, returning the previous value and whether
// one was present. Callers use the "previously present" flag to detect
// shadowing during recursive traversals.
func (s *VarSet) Insert(id *Identifier, value interface{}) (prior interface{}, present bool) {
	prior, present = s.entries[id]
	s.entries[id] = value
	return prior, present
}

// Remove deletes id from the set, if present.
func (s *VarSet) Remove(id *Identifier) {
	delete(s.entries, id)
}

// Lookup returns the value associated with id, if any.
func (s *VarSet) Lookup(id *Identifier) (value interface{}, present bool) {
	value, present = s.entries[id]
	return value, present
}

// Len returns the number of entries currently in the set.
func (s *VarSet) Len() int {
	return len(s.entries)
}

// Keys returns the identifiers currently in the set, in no particular order.
func (s *VarSet) Keys() []*Identifier {
	keys := make([]*Identifier, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}
