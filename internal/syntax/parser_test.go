package syntax

import (
	"testing"

	"github.com/bediger4000/lambda-calculator/lambda"
)

func TestParserIdentity(t *testing.T) {
	p := &Parser{}
	stmt, err := p.ParseLine("test", "%x. x")
	if err != nil {
		t.Fatal(err)
	}
	if stmt.IsDefinition() {
		t.Fatal("bare expression must not be parsed as a definition")
	}
	if stmt.Expr.Kind != lambda.AbstractionKind {
		t.Fatalf("got %s, want an abstraction", stmt.Expr.Kind)
	}
}

func TestParserLeftAssociativeApplication(t *testing.T) {
	p := &Parser{}
	stmt, err := p.ParseLine("test", "f x y")
	if err != nil {
		t.Fatal(err)
	}
	// f x y == (f x) y
	if stmt.Expr.Kind != lambda.ApplicationKind || stmt.Expr.Rator.Kind != lambda.ApplicationKind {
		t.Fatalf("expected a left-associated application tree, got %s", lambda.Sprint(stmt.Expr))
	}
}

func TestParserParenthesesOverrideAssociativity(t *testing.T) {
	p := &Parser{}
	stmt, err := p.ParseLine("test", "f (x y)")
	if err != nil {
		t.Fatal(err)
	}
	if stmt.Expr.Kind != lambda.ApplicationKind || stmt.Expr.Rand.Kind != lambda.ApplicationKind {
		t.Fatalf("expected f applied to (x y), got %s", lambda.Sprint(stmt.Expr))
	}
}

func TestParserDefinition(t *testing.T) {
	p := &Parser{}
	stmt, err := p.ParseLine("test", "id = %x. x")
	if err != nil {
		t.Fatal(err)
	}
	if !stmt.IsDefinition() || stmt.Name != "id" {
		t.Fatalf("expected a definition named id, got %+v", stmt)
	}
}

func TestParserStarSugarMarksParameterized(t *testing.T) {
	p := &Parser{}
	stmt, err := p.ParseLine("test", "*x")
	if err != nil {
		t.Fatal(err)
	}
	if !stmt.Expr.Parameterized {
		t.Fatal("*-prefixed atom must come out with Parameterized set")
	}
}

func TestParserStarOverParenthesizedExpression(t *testing.T) {
	p := &Parser{}
	stmt, err := p.ParseLine("test", "*(f x)")
	if err != nil {
		t.Fatal(err)
	}
	if !stmt.Expr.Parameterized || stmt.Expr.Kind != lambda.ApplicationKind {
		t.Fatalf("expected a parameterized application, got %+v", stmt.Expr)
	}
}

func TestParserResolvesAbbreviations(t *testing.T) {
	abbrevs := lambda.NewAbbrevTable()
	x := lambda.Atoms.Intern("parser-test-abbrev-x")
	abbrevs.Insert("id", lambda.Abstraction(x, lambda.Variable(x)))

	p := &Parser{Abbrevs: abbrevs}
	stmt, err := p.ParseLine("test", "id")
	if err != nil {
		t.Fatal(err)
	}
	if stmt.Expr.Kind != lambda.AbstractionKind {
		t.Fatalf("expected 'id' to resolve to its bound abstraction, got %s", lambda.Sprint(stmt.Expr))
	}
}

func TestParserUnknownNameIsFreeVariable(t *testing.T) {
	p := &Parser{Abbrevs: lambda.NewAbbrevTable()}
	stmt, err := p.ParseLine("test", "unbound")
	if err != nil {
		t.Fatal(err)
	}
	if stmt.Expr.Kind != lambda.VariableKind {
		t.Fatalf("expected a free variable, got %s", stmt.Expr.Kind)
	}
}

func TestParserRejectsTrailingInput(t *testing.T) {
	p := &Parser{}
	if _, err := p.ParseLine("test", "x )"); err == nil {
		t.Fatal("expected a parse error for unmatched trailing input")
	}
}

func TestParserRejectsEmptyInput(t *testing.T) {
	p := &Parser{}
	if _, err := p.ParseLine("test", "   "); err == nil {
		t.Fatal("expected a parse error for empty input")
	}
}

func TestParserRejectsMalformedAbstraction(t *testing.T) {
	p := &Parser{}
	if _, err := p.ParseLine("test", "%x y"); err == nil {
		t.Fatal("expected a parse error for a missing '.' after the bound variable")
	}
}
