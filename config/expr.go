package config

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

var (
	// ErrSyntax is returned for a malformed expression.
	ErrSyntax = errors.New("config: bad expression")
	// ErrUnknownName is returned for an identifier with no value.
	ErrUnknownName = errors.New("config: unknown name")
	// ErrDivByZero is returned when an expression divides by zero.
	ErrDivByZero = errors.New("config: division by zero")
)

// Eval computes an arithmetic expression over numbers and names. It
// knows + - * / with the usual precedence, unary signs and parentheses;
// names are resolved through lookup.
func Eval(src string, lookup func(name string) (float64, bool)) (float64, error) {
	p := &parser{src: []rune(src), lookup: lookup}
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	p.skip()
	if p.pos < len(p.src) {
		return 0, fmt.Errorf("%w: unexpected %q in %q", ErrSyntax, p.src[p.pos], src)
	}
	return v, nil
}

type parser struct {
	src    []rune
	pos    int
	lookup func(string) (float64, bool)
}

func (p *parser) skip() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

// peek returns the next non-space rune, or 0 at the end.
func (p *parser) peek() rune {
	p.skip()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) sum() (float64, error) {
	v, err := p.product()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return v, nil
		}
		p.pos++
		r, err := p.product()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += r
		} else {
			v -= r
		}
	}
}

func (p *parser) product() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return v, nil
		}
		p.pos++
		r, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			v *= r
			continue
		}
		if r == 0 {
			return 0, ErrDivByZero
		}
		v /= r
	}
}

func (p *parser) unary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.unary()
		return -v, err
	case '+':
		p.pos++
		return p.unary()
	}
	return p.primary()
}

func (p *parser) primary() (float64, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		v, err := p.sum()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("%w: missing )", ErrSyntax)
		}
		p.pos++
		return v, nil
	case unicode.IsDigit(c) || c == '.':
		start := p.pos
		for p.pos < len(p.src) && (unicode.IsDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
			p.pos++
		}
		lit := string(p.src[start:p.pos])
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: number %q", ErrSyntax, lit)
		}
		return v, nil
	case c == '_' || unicode.IsLetter(c):
		start := p.pos
		for p.pos < len(p.src) && isIdent(p.src[p.pos]) {
			p.pos++
		}
		name := string(p.src[start:p.pos])
		if p.lookup != nil {
			if v, ok := p.lookup(name); ok {
				return v, nil
			}
		}
		return 0, fmt.Errorf("%w: %s", ErrUnknownName, name)
	case c == 0:
		return 0, fmt.Errorf("%w: unexpected end", ErrSyntax)
	}
	return 0, fmt.Errorf("%w: unexpected %q", ErrSyntax, c)
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
