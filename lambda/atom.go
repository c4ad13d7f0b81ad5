// Package lambda implements the reduction engine for an untyped lambda
// calculus interpreter: the expression data model, capture-avoiding
// substitution, free/bound variable analysis, alpha-equivalence, and the
// destructive normal-order reduction loop. Parsing, the REPL, and signal
// handling live outside this package; see internal/syntax and internal/repl.
package lambda

import "sync"

// Identifier is a stable, interned handle for a name. Two identifiers are
// the same name if and only if they are the same pointer: callers must never
// compare identifiers by the string they were interned from.
type Identifier struct {
	name string
}

// String returns the identifier's spelling.
func (id *Identifier) String() string {
	if id == nil {
		return "<nil>"
	}
	return id.name
}

// Table interns identifier strings so that two occurrences of the same name
// compare equal by pointer identity. The table only grows: there is no
// deletion, matching the process-lifetime guarantee the rest of the package
// relies on (I5 in spec).
type Table struct {
	mu      sync.Mutex
	entries map[string]*Identifier
}

// NewTable returns an empty atom table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*Identifier)}
}

// Intern returns the stable identifier for str, creating it on first use.
// Intern(a) == Intern(b) (by pointer) iff a == b (by bytes).
func (t *Table) Intern(str string) *Identifier {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.entries[str]; ok {
		return id
	}
	id := &Identifier{name: str}
	t.entries[str] = id
	return id
}

// Atoms is the process-wide atom table. The core never creates identifiers
// through any other path, so every Identifier reaching Substitute,
// NormalOrderReduction, and friends is guaranteed comparable by pointer.
var Atoms = NewTable()
