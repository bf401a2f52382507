package prop

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

type parser struct {
	s     scanner.Scanner
	eof   bool   // Have we reached eof yet?
	tok   rune   // Last token read
	token string // Text of the last token read
	pos   scanner.Position
	err   error // First error reported by the scanner
}

// Parse parses a flat formula and returns the corresponding Formula.
// Formulas are written using single lowercase letters as atoms, decimal numbers as
// references to subformulas, and the following operators:
//
// - for a negation, the "~" unary operator, binding to its immediate operand,
// - for a conjunction, the "&" operator,
// - for a disjunction, the "|" operator,
// - for an exclusive disjunction, the "+" operator,
// - for an implication, the ">" operator,
// - for an equivalence, the "<" operator.
//
// Binary operators share the same priority and are left-associative.
// Parentheses can be used to group subformulas.
func Parse(expr string) (Formula, error) {
	var p parser
	p.s.Init(strings.NewReader(expr))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts
	p.s.IsIdentRune = func(ch rune, i int) bool {
		return i == 0 && ch >= 'a' && ch <= 'z'
	}
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%s at column %d", msg, s.Pos().Column)
		}
	}
	p.scan()
	f, err := p.parseExpr()
	if err == nil && !p.eof {
		err = fmt.Errorf("unexpected token %q at column %d", p.token, p.pos.Column)
	}
	if err == nil {
		err = p.err
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func isBinary(tok rune) bool {
	return tok == '&' || tok == '|' || tok == '+' || tok == '>' || tok == '<'
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.tok = p.s.Scan()
	p.eof = (p.tok == scanner.EOF)
	p.token = p.s.TokenText()
	p.pos = p.s.Position
}

func (p *parser) parseExpr() (f Formula, err error) {
	if p.eof {
		return nil, fmt.Errorf("expected expression, found EOF")
	}
	f, err = p.parseUnary()
	if err != nil {
		return nil, err
	}
	var prev rune
	for !p.eof && isBinary(p.tok) {
		op := p.tok
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF after %q", op)
		}
		f2, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		f = combine(op, prev, f, f2)
		prev = op
	}
	return f, nil
}

// combine applies the binary operator op to f1 and f2.
// Chains of conjunctions or disjunctions are kept flat.
func combine(op, prev rune, f1, f2 Formula) Formula {
	switch op {
	case '&':
		if a, ok := f1.(and); ok && prev == op {
			return append(a, f2)
		}
		return And(f1, f2)
	case '|':
		if o, ok := f1.(or); ok && prev == op {
			return append(o, f2)
		}
		return Or(f1, f2)
	case '+':
		return Xor(f1, f2)
	case '>':
		return Implies(f1, f2)
	case '<':
		return Eq(f1, f2)
	default:
		panic(fmt.Errorf("invalid binary operator %q", op))
	}
}

func (p *parser) parseUnary() (f Formula, err error) {
	if p.tok == '~' {
		p.scan()
		if p.eof {
			return nil, fmt.Errorf("unexpected EOF after negation")
		}
		f, err = p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	return p.parseBasic()
}

func (p *parser) parseBasic() (f Formula, err error) {
	switch p.tok {
	case '(':
		p.scan()
		f, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.eof {
			return nil, fmt.Errorf("expected closing parenthesis, found EOF")
		}
		if p.tok != ')' {
			return nil, fmt.Errorf("expected closing parenthesis, found %q at column %d", p.token, p.pos.Column)
		}
		p.scan()
		return f, nil
	case scanner.Ident:
		name := p.token[0]
		p.scan()
		return Var(name), nil
	case scanner.Int:
		key, err := strconv.Atoi(p.token)
		if err != nil {
			return nil, fmt.Errorf("invalid subformula reference %q at column %d", p.token, p.pos.Column)
		}
		p.scan()
		return Ref(key), nil
	default:
		return nil, fmt.Errorf("unexpected token %q at column %d", p.token, p.pos.Column)
	}
}
