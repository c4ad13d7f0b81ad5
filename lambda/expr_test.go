package lambda

import "testing"

// TestCopyIdentity checks invariant 1 of spec.md §8: Equivalent(e,
// Copy(e)) holds, and the copy shares no subtree pointer with the original.
func TestCopyIdentity(t *testing.T) {
	x := Atoms.Intern("expr-test-x")
	e := Abstraction(x, Application(Variable(x), Variable(x)))

	c := Copy(e)
	if !Equivalent(e, c) {
		t.Fatal("copy is not equivalent to original")
	}
	if c == e || c.Body == e.Body || c.Body.Rator == e.Body.Rator {
		t.Fatal("copy shares subtree pointers with original")
	}
}

func TestCopyPreservesParameterized(t *testing.T) {
	x := Atoms.Intern("expr-test-p")
	e := Variable(x)
	e.Parameterized = true

	c := Copy(e)
	if !c.Parameterized {
		t.Fatal("Copy must preserve the Parameterized flag")
	}
}

func TestCopyNil(t *testing.T) {
	if Copy(nil) != nil {
		t.Fatal("Copy(nil) must return nil")
	}
}

type fatalLogger struct {
	t       *testing.T
	warned  bool
	message string
}

func (l *fatalLogger) Warnf(format string, args ...interface{}) {
	l.warned = true
}

func TestFreeNilLogs(t *testing.T) {
	logger := &fatalLogger{t: t}
	Free(nil, logger)
	if !logger.warned {
		t.Fatal("Free(nil, ...) should log a warning")
	}
}

func TestFreeNilWithoutLoggerDoesNotPanic(t *testing.T) {
	Free(nil, nil)
}

func TestFreeClearsSubtree(t *testing.T) {
	x := Atoms.Intern("expr-test-free")
	e := Application(Variable(x), Variable(x))
	Free(e, nil)
	if e.Rator != nil || e.Rand != nil {
		t.Fatal("Free should clear an application's children")
	}
}
