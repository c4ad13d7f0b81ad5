package lambda

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReduceIdentityApplication is scenario S1 of spec.md §8:
// (%x. x) y reduces to y.
func TestReduceIdentityApplication(t *testing.T) {
	x := Atoms.Intern("reduce-test-s1-x")
	y := Atoms.Intern("reduce-test-s1-y")

	e := Application(Abstraction(x, Variable(x)), Variable(y))
	result := NormalOrderReduction(nil, e)

	assert.True(t, Equivalent(result, Variable(y)))
}

// TestReduceInterruption is scenario S2 of spec.md §8: the omega combinator
// applied to itself never reaches normal form; after an external interrupt
// the driver returns promptly with a tree that is still alpha-equivalent to
// the original.
func TestReduceInterruption(t *testing.T) {
	w := Atoms.Intern("reduce-test-s2-w")
	omega := Abstraction(w, Application(Variable(w), Variable(w)))
	e := Application(Copy(omega), Copy(omega))

	var flag int32
	cfg := &Config{Interrupted: &flag}

	done := make(chan *Expression, 1)
	go func() {
		done <- NormalOrderReduction(cfg, e)
	}()

	time.Sleep(20 * time.Millisecond)
	atomic.StoreInt32(&flag, 1)

	select {
	case result := <-done:
		// e itself was released by the first rewrite, so compare against a
		// freshly built copy of the starting term.
		assert.True(t, AlphaEquivalent(result, Application(Copy(omega), Copy(omega))), "interrupted reduction should still look like (%%w.w w)(%%w.w w)")
	case <-time.After(2 * time.Second):
		t.Fatal("NormalOrderReduction did not honor the interrupt flag")
	}
}

// TestReduceCaptureAvoidance is scenario S3 of spec.md §8:
// (%x. %y. x)(y) reduces to %z. y for a fresh z, never %y. y.
func TestReduceCaptureAvoidance(t *testing.T) {
	x := Atoms.Intern("reduce-test-s3-x")
	y := Atoms.Intern("reduce-test-s3-y")

	e := Application(
		Abstraction(x, Abstraction(y, Variable(x))),
		Variable(y),
	)
	result := NormalOrderReduction(nil, e)

	require.Equal(t, AbstractionKind, result.Kind)
	assert.NotEqual(t, y, result.Bound, "the result must rename the binder away from the captured name")

	someOther := Atoms.Intern("reduce-test-s3-check")
	expected := Abstraction(someOther, Variable(y))
	assert.True(t, AlphaEquivalent(result, expected))
}

// TestReduceNormalOrderPreference is scenario S4 of spec.md §8: normal order
// discards a divergent argument that is never used.
func TestReduceNormalOrderPreference(t *testing.T) {
	z := Atoms.Intern("reduce-test-s4-z")
	w := Atoms.Intern("reduce-test-s4-w")
	x := Atoms.Intern("reduce-test-s4-x")

	omega := Abstraction(w, Application(Variable(w), Variable(w)))
	diverging := Application(Copy(omega), Copy(omega))
	// (%x. z) ((%w. w w)(%w. w w))
	e := Application(Abstraction(x, Variable(z)), diverging)

	var flag int32
	cfg := &Config{Interrupted: &flag}

	done := make(chan *Expression, 1)
	go func() { done <- NormalOrderReduction(cfg, e) }()

	select {
	case result := <-done:
		assert.True(t, Equivalent(result, Variable(z)))
	case <-time.After(2 * time.Second):
		atomic.StoreInt32(&flag, 1)
		t.Fatal("normal-order reduction should discard the diverging argument without evaluating it")
	}
}

// TestReduceEtaLaw is scenario S5 and invariant 7 of spec.md §8: with eta
// enabled, %x. f x reduces to f when x is not free in f.
func TestReduceEtaLaw(t *testing.T) {
	f := Atoms.Intern("reduce-test-s5-f")
	x := Atoms.Intern("reduce-test-s5-x")

	e := Abstraction(x, Application(Variable(f), Variable(x)))

	withEta := NormalOrderReduction(&Config{EtaReduction: true}, Copy(e))
	assert.True(t, Equivalent(withEta, Variable(f)))

	withoutEta := NormalOrderReduction(&Config{EtaReduction: false}, Copy(e))
	assert.True(t, Equivalent(withoutEta, e), "without eta the term is already in normal form")
}

// TestReduceIdempotent is invariant 6 of spec.md §8: reducing an
// already-normal tree returns a structurally equivalent tree.
func TestReduceIdempotent(t *testing.T) {
	x := Atoms.Intern("reduce-test-law6-x")
	y := Atoms.Intern("reduce-test-law6-y")

	e := Application(Abstraction(x, Variable(x)), Variable(y))
	cfg := &Config{EtaReduction: true}

	once := NormalOrderReduction(cfg, Copy(e))
	twice := NormalOrderReduction(cfg, Copy(once))

	assert.True(t, Equivalent(once, twice))
}

func TestReduceDoesNotEtaWithoutFlag(t *testing.T) {
	f := Atoms.Intern("reduce-test-noeta-f")
	x := Atoms.Intern("reduce-test-noeta-x")
	e := Abstraction(x, Application(Variable(f), Variable(x)))

	result := NormalOrderReduction(nil, Copy(e))
	assert.True(t, Equivalent(result, e))
}
