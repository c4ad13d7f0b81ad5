package syntax

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/bediger4000/lambda-calculator/lambda"
)

// Statement is the result of parsing one line of input: either a bare
// expression to reduce/print, or a name = expression abbreviation
// definition (spec.md §1's "abbreviation storage" collaborator, restored as
// concrete syntax per SPEC_FULL.md §8).
type Statement struct {
	Name string // non-empty for a definition
	Expr *lambda.Expression
}

// IsDefinition reports whether the parsed line bound a name rather than
// presenting a bare expression.
func (s *Statement) IsDefinition() bool {
	return s.Name != ""
}

// Parser turns lexed tokens into lambda.Expression trees, resolving bare
// identifiers against an abbreviation table before falling back to a fresh
// variable reference, and setting Parameterized on *-sugared nodes per the
// original grammar (lambda_expression.h's parameterized field).
type Parser struct {
	// LambdaChar overrides the scanned abstraction marker; zero means '%'.
	LambdaChar rune
	// Abbrevs resolves bare identifiers to their bound expression. A nil
	// table means no name is ever an abbreviation.
	Abbrevs *lambda.AbbrevTable

	name  string
	lex   *lexer
	tok   item
	ahead []item
}

// ParseError reports a syntax error with the 0-based byte offset it was
// found at, wrapped with github.com/pkg/errors so callers can add context
// without losing the original message.
type ParseError struct {
	Name string
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	return e.Name + ": " + e.Msg
}

// ParseLine parses a single line of input: either "name = expr" or a bare
// expression. name is used only for error messages.
func (p *Parser) ParseLine(name, line string) (*Statement, error) {
	line = stripComment(line)
	p.name = name
	p.lex = lex(name, line, p.LambdaChar)
	p.ahead = nil
	p.advance()

	if p.tok.typ == itemEOF {
		return nil, errors.Wrapf(&ParseError{Name: name, Pos: 0, Msg: "empty input"}, "parsing %q", name)
	}

	if p.tok.typ == itemIdent {
		if n := p.peekDefinition(); n != "" {
			p.advance() // consume the identifier
			p.advance() // consume '='
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expectEOF(); err != nil {
				return nil, err
			}
			return &Statement{Name: n, Expr: expr}, nil
		}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return &Statement{Expr: expr}, nil
}

// peekDefinition returns the bound name if the current identifier is
// immediately followed by '=', otherwise "".
func (p *Parser) peekDefinition() string {
	if p.tok.typ != itemIdent {
		return ""
	}
	name := p.tok.val
	next := p.lookahead()
	if next.typ == itemEquals {
		return name
	}
	return ""
}

func (p *Parser) lookahead() item {
	if len(p.ahead) == 0 {
		p.ahead = append(p.ahead, p.lex.nextToken())
	}
	return p.ahead[0]
}

func (p *Parser) advance() {
	if len(p.ahead) > 0 {
		p.tok = p.ahead[0]
		p.ahead = p.ahead[1:]
		return
	}
	p.tok = p.lex.nextToken()
}

func (p *Parser) expectEOF() error {
	if p.tok.typ != itemEOF {
		return errors.Wrapf(&ParseError{Name: p.name, Pos: p.tok.pos, Msg: "unexpected trailing input: " + p.tok.String()}, "parsing %q", p.name)
	}
	return nil
}

// parseExpression parses an application: a left-associated run of one or
// more atoms, per spec.md §3's Application variant.
func (p *Parser) parseExpression() (*lambda.Expression, error) {
	first, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	result := first
	for p.startsAtom() {
		next, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		result = lambda.Application(result, next)
	}
	return result, nil
}

func (p *Parser) startsAtom() bool {
	switch p.tok.typ {
	case itemIdent, itemLambda, itemLParen, itemStar:
		return true
	default:
		return false
	}
}

// parseAtom parses a variable, an abstraction, a parenthesized expression,
// or a *-prefixed parameterized form of any of those (spec.md §4.8,
// original grammar's "parameterized" flag).
func (p *Parser) parseAtom() (*lambda.Expression, error) {
	switch p.tok.typ {
	case itemStar:
		p.advance()
		e, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		e.Parameterized = true
		return e, nil
	case itemIdent:
		name := p.tok.val
		p.advance()
		return p.resolveIdent(name), nil
	case itemLambda:
		p.advance()
		if p.tok.typ != itemIdent {
			return nil, p.errorf("expected a bound variable after the abstraction marker, got %s", p.tok)
		}
		bound := p.tok.val
		p.advance()
		if p.tok.typ != itemDot {
			return nil, p.errorf("expected '.' after bound variable %q, got %s", bound, p.tok)
		}
		p.advance()
		body, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return lambda.Abstraction(lambda.Atoms.Intern(bound), body), nil
	case itemLParen:
		p.advance()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.tok.typ != itemRParen {
			return nil, p.errorf("expected ')', got %s", p.tok)
		}
		p.advance()
		return e, nil
	default:
		return nil, p.errorf("expected a variable, '(', '*' or an abstraction, got %s", p.tok)
	}
}

func (p *Parser) resolveIdent(name string) *lambda.Expression {
	if p.Abbrevs != nil {
		if e, ok := p.Abbrevs.Lookup(name); ok {
			return e
		}
	}
	return lambda.Variable(lambda.Atoms.Intern(name))
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(&ParseError{Name: p.name, Pos: p.tok.pos, Msg: fmt.Sprintf(format, args...)}, "parsing %q", p.name)
}
