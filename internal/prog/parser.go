// Package prog turns progression source text into a flat degree
// sequence: a small recursive grammar with grouping and repetition,
// plus a table of named sequence presets.
package prog

import (
	"strconv"
	"strings"

	"github.com/cbegin/progmap-go/internal/degree"
	"github.com/cbegin/progmap-go/internal/generr"
)

// Grammar:
//
//	expr   := column (',' column)*
//	column := item+
//	item   := atom ('*' INTEGER)?
//	atom   := degree | '(' expr ')'
//
// '-' is accepted as a synonym for ','. Column boundaries scope the
// repetition suffix but do not survive into the output: the result is
// the flat concatenation of all expanded columns.
func Parse(src string) ([]degree.Degree, error) {
	p := &parser{toks: tokenize(src)}
	seq, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, generr.Syntaxf("unexpected %q after expression", tok)
	}
	return seq, nil
}

func isStructural(b byte) bool {
	return b == '(' || b == ')' || b == '*' || b == ',' || b == '-'
}

func isSpace(b byte) bool { return b == ' ' || b == '\n' || b == '\r' || b == '\t' }

func tokenize(src string) []string {
	toks := make([]string, 0, 16)
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			toks = append(toks, buf.String())
			buf.Reset()
		}
	}
	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case isSpace(ch):
			flush()
		case isStructural(ch):
			flush()
			if ch == '-' {
				ch = ','
			}
			toks = append(toks, string(ch))
		default:
			buf.WriteByte(ch)
		}
	}
	flush()
	return toks
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (string, error) {
	tok, ok := p.peek()
	if !ok {
		return "", generr.Syntaxf("unexpected end of input")
	}
	p.pos++
	return tok, nil
}

func (p *parser) expect(want string) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok != want {
		return generr.Syntaxf("expected %q, got %q", want, tok)
	}
	return nil
}

func (p *parser) parseExpr() ([]degree.Degree, error) {
	seq, err := p.parseColumn()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok != "," {
			return seq, nil
		}
		p.pos++
		col, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		seq = append(seq, col...)
	}
}

func (p *parser) parseColumn() ([]degree.Degree, error) {
	items, err := p.parseItem()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok == "," || tok == ")" {
			return items, nil
		}
		more, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, more...)
	}
}

func (p *parser) parseItem() ([]degree.Degree, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	tok, ok := p.peek()
	if !ok || tok != "*" {
		return atom, nil
	}
	p.pos++
	count, err := p.next()
	if err != nil {
		return nil, err
	}
	n, convErr := strconv.Atoi(count)
	if convErr != nil || n < 0 {
		return nil, generr.Syntaxf("'*' needs an integer repeat count, got %q", count)
	}
	// Flattened in place, not wrapped.
	out := make([]degree.Degree, 0, len(atom)*n)
	for i := 0; i < n; i++ {
		out = append(out, atom...)
	}
	return out, nil
}

func (p *parser) parseAtom() ([]degree.Degree, error) {
	tok, ok := p.peek()
	if ok && tok == "(" {
		p.pos++
		inside, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return inside, nil
	}
	raw, err := p.next()
	if err != nil {
		return nil, err
	}
	d, err := degree.Parse(raw)
	if err != nil {
		return nil, err
	}
	return []degree.Degree{d}, nil
}
