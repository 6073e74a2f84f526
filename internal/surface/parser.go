package surface

import (
	"fmt"
	"strconv"

	"github.com/hashedone/typed/parsed"
)

// parseError reports a syntax error at a token position.
type parseError struct {
	pos int
	msg string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.pos, e.msg)
}

// Parse reads src as a sequence of top-level `let name = expr;` bindings
// followed by a result expression, and returns the equivalent parsed.Root.
func Parse(src string) (parsed.Root, error) {
	tokens, err := lex(src)
	if err != nil {
		return parsed.Root{}, err
	}
	p := &parser{tokens: tokens}

	var bindings []parsed.Binding
	for p.at(tokLet) {
		b, err := p.parseBinding()
		if err != nil {
			return parsed.Root{}, err
		}
		bindings = append(bindings, b)
	}

	expr, err := p.parseExpr()
	if err != nil {
		return parsed.Root{}, err
	}
	if !p.at(tokEOF) {
		return parsed.Root{}, &parseError{pos: p.cur().pos, msg: "unexpected trailing input"}
	}
	return parsed.Root{Bindings: bindings, Expr: expr}, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) cur() token { return p.tokens[p.pos] }

func (p *parser) at(k tokenKind) bool { return p.cur().kind == k }

func (p *parser) advance() token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	if !p.at(k) {
		return token{}, &parseError{pos: p.cur().pos, msg: "expected " + what}
	}
	return p.advance(), nil
}

func (p *parser) parseBinding() (parsed.Binding, error) {
	if _, err := p.expect(tokLet, "'let'"); err != nil {
		return parsed.Binding{}, err
	}
	name, err := p.expect(tokIdent, "identifier")
	if err != nil {
		return parsed.Binding{}, err
	}
	if _, err := p.expect(tokEquals, "'='"); err != nil {
		return parsed.Binding{}, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return parsed.Binding{}, err
	}
	if _, err := p.expect(tokSemicolon, "';'"); err != nil {
		return parsed.Binding{}, err
	}
	return parsed.Binding{Name: name.text, Expr: expr}, nil
}

// parseExpr parses a primary expression followed by zero or more
// call-argument lists, left-associating `f(a)(b)` as `(f(a))(b)`.
func (p *parser) parseExpr() (parsed.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.at(tokLParen) {
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		expr = &parsed.FnAppl{Func: expr, Args: args}
	}
	return expr, nil
}

func (p *parser) parsePrimary() (parsed.Expr, error) {
	switch {
	case p.at(tokNumber):
		tok := p.advance()
		n, err := strconv.ParseUint(tok.text, 10, 64)
		if err != nil {
			return nil, &parseError{pos: tok.pos, msg: "invalid number literal"}
		}
		return parsed.Literal{Lit: parsed.Lit{Value: n}}, nil

	case p.at(tokIdent):
		tok := p.advance()
		return parsed.Variable{Name: tok.text}, nil

	case p.at(tokFn):
		return p.parseFnDecl()

	case p.at(tokLParen):
		// Only `()` (the unit literal) is legal here: this grammar has no
		// parenthesized-grouping expression form.
		p.advance()
		if _, err := p.expect(tokRParen, "')' closing '(' — only the unit literal '()' may stand alone here"); err != nil {
			return nil, err
		}
		return parsed.Literal{Lit: parsed.Lit{Unit: true}}, nil

	default:
		return nil, &parseError{pos: p.cur().pos, msg: "expected an expression"}
	}
}

func (p *parser) parseFnDecl() (parsed.Expr, error) {
	if _, err := p.expect(tokFn, "'fn'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen, "'(' after 'fn'"); err != nil {
		return nil, err
	}
	var args []string
	if !p.at(tokRParen) {
		for {
			name, err := p.expect(tokIdent, "argument name")
			if err != nil {
				return nil, err
			}
			args = append(args, name.text)
			if !p.at(tokComma) {
				break
			}
			p.advance()
		}
	}
	closeParen, err := p.expect(tokRParen, "')' closing argument list")
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, &parseError{pos: closeParen.pos, msg: "fn declaration needs at least one argument"}
	}
	if _, err := p.expect(tokLBrace, "'{' opening fn body"); err != nil {
		return nil, err
	}

	var bindings []parsed.Binding
	for p.at(tokLet) {
		b, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRBrace, "'}' closing fn body"); err != nil {
		return nil, err
	}
	return &parsed.FnDecl{Args: args, Bindings: bindings, Expr: body}, nil
}

// parseArgList parses a parenthesized, comma-separated argument list. An
// empty `()` here is a call with zero arguments, which is not a legal
// FnAppl (§6.1 requires at least one argument) — this function reports it
// as a parse error rather than letting an empty Args slice reach Build.
func (p *parser) parseArgList() ([]parsed.Expr, error) {
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var args []parsed.Expr
	if !p.at(tokRParen) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.at(tokComma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(tokRParen, "')' closing argument list"); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, &parseError{pos: p.cur().pos, msg: "function call needs at least one argument"}
	}
	return args, nil
}
