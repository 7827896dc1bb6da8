package catalog

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/san-kum/unitlab/internal/dimension"
	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/rational"
	"github.com/san-kum/unitlab/internal/unit"
)

// Expression grammar:
//
//	expr     := term (('*' | '/') term)*
//	term     := factor ('^' exponent)?
//	factor   := name | number | 'pi' | '(' expr ')'
//	exponent := ['-'] int | '(' ['-'] int ['/' int] ')'

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokNumber
	tokOp
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		r, w := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += w
		case r == '*' || r == '/' || r == '^' || r == '(' || r == ')' || r == '-':
			toks = append(toks, token{tokOp, string(r), i})
			i += w
		case unicode.IsDigit(r) || r == '.':
			j := i
			for j < len(src) && (isDigit(src[j]) || src[j] == '.') {
				j++
			}
			if j < len(src) && (src[j] == 'e' || src[j] == 'E') {
				k := j + 1
				if k < len(src) && (src[k] == '+' || src[k] == '-') {
					k++
				}
				if k < len(src) && isDigit(src[k]) {
					for k < len(src) && isDigit(src[k]) {
						k++
					}
					j = k
				}
			}
			toks = append(toks, token{tokNumber, src[i:j], i})
			i = j
		case isNameRune(r, true):
			j := i
			for j < len(src) {
				r, w := utf8.DecodeRuneInString(src[j:])
				if !isNameRune(r, false) {
					break
				}
				j += w
			}
			toks = append(toks, token{tokName, src[i:j], i})
			i = j
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, i)
		}
	}
	return append(toks, token{tokEOF, "", len(src)}), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNameRune(r rune, first bool) bool {
	if unicode.IsLetter(r) || r == '_' || r == '°' {
		return true
	}
	return !first && unicode.IsDigit(r)
}

type parser struct {
	src    string
	toks   []token
	pos    int
	lookup func(string) (unit.Unit, error)
}

func parseExpr(src string, lookup func(string) (unit.Unit, error)) (unit.Unit, error) {
	toks, err := lex(src)
	if err != nil {
		return unit.One, err
	}
	p := &parser{src: src, toks: toks, lookup: lookup}
	u, err := p.expr()
	if err != nil {
		return unit.One, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return unit.One, p.unexpected(t)
	}
	return u, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) accept(op string) bool {
	if t := p.peek(); t.kind == tokOp && t.text == op {
		p.pos++
		return true
	}
	return false
}

func (p *parser) unexpected(t token) error {
	if t.kind == tokEOF {
		return fmt.Errorf("%w: %q: unexpected end", ErrSyntax, p.src)
	}
	return fmt.Errorf("%w: %q: unexpected %q at %d", ErrSyntax, p.src, t.text, t.pos)
}

func (p *parser) expr() (unit.Unit, error) {
	u, err := p.term()
	if err != nil {
		return u, err
	}
	for {
		switch {
		case p.accept("*"):
			v, err := p.term()
			if err != nil {
				return u, err
			}
			u = unit.Product(u, v)
		case p.accept("/"):
			v, err := p.term()
			if err != nil {
				return u, err
			}
			u = unit.Quotient(u, v)
		default:
			return u, nil
		}
	}
}

func (p *parser) term() (unit.Unit, error) {
	u, err := p.factor()
	if err != nil || !p.accept("^") {
		return u, err
	}
	e, err := p.exponent()
	if err != nil {
		return u, err
	}
	return unit.Pow(u, e)
}

func (p *parser) factor() (unit.Unit, error) {
	t := p.next()
	switch t.kind {
	case tokName:
		if t.text == "pi" {
			return unit.New(dimension.Dimensionless, magnitude.Pi(), "pi"), nil
		}
		return p.lookup(t.text)
	case tokNumber:
		m, err := magnitude.ParseDecimal(t.text)
		if err != nil {
			return unit.One, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		return unit.New(dimension.Dimensionless, m, t.text), nil
	case tokOp:
		if t.text == "(" {
			u, err := p.expr()
			if err != nil {
				return u, err
			}
			if !p.accept(")") {
				return u, p.unexpected(p.peek())
			}
			return u, nil
		}
	}
	return unit.One, p.unexpected(t)
}

func (p *parser) exponent() (rational.Rational, error) {
	if !p.accept("(") {
		return p.integer()
	}
	num, err := p.integer()
	if err != nil {
		return num, err
	}
	e := num
	if p.accept("/") {
		den, err := p.integer()
		if err != nil {
			return den, err
		}
		if den.IsZero() {
			return den, fmt.Errorf("%w: %q: zero exponent denominator", ErrSyntax, p.src)
		}
		e = num.Div(den)
	}
	if !p.accept(")") {
		return e, p.unexpected(p.peek())
	}
	return e, nil
}

func (p *parser) integer() (rational.Rational, error) {
	neg := p.accept("-")
	t := p.next()
	if t.kind != tokNumber {
		return rational.Zero, p.unexpected(t)
	}
	n, err := strconv.ParseInt(t.text, 10, 64)
	if err != nil {
		return rational.Zero, fmt.Errorf("%w: %q: exponent %q", ErrSyntax, p.src, t.text)
	}
	if neg {
		n = -n
	}
	return rational.Int(n), nil
}
