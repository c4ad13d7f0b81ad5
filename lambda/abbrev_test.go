package lambda

import "testing"

func TestAbbrevLookupMissing(t *testing.T) {
	table := NewAbbrevTable()
	if _, ok := table.Lookup("id"); ok {
		t.Fatal("expected lookup of an unknown abbreviation to fail")
	}
}

func TestAbbrevInsertAndLookup(t *testing.T) {
	table := NewAbbrevTable()
	x := Atoms.Intern("abbrev-test-x")
	id := Abstraction(x, Variable(x))

	prior := table.Insert("id", id)
	if prior != nil {
		t.Fatal("expected no prior abbreviation for a fresh name")
	}

	got, ok := table.Lookup("id")
	if !ok {
		t.Fatal("expected lookup to find the inserted abbreviation")
	}
	if !Equivalent(got, id) {
		t.Fatal("looked up expression should be equivalent to the inserted one")
	}
	if got == id {
		t.Fatal("Lookup must return a fresh copy, not the stored expression")
	}
}

func TestAbbrevInsertReturnsPrior(t *testing.T) {
	table := NewAbbrevTable()
	x := Atoms.Intern("abbrev-test-prior-x")

	first := Variable(x)
	second := Application(Variable(x), Variable(x))

	table.Insert("k", first)
	prior := table.Insert("k", second)
	if prior != first {
		t.Fatal("expected Insert to return the previously stored expression")
	}
}
