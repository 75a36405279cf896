package grid2

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/tilekit/geom"
)

// ErrorCode classifies a parse failure; zero is never returned
type ErrorCode int

const (
	MissingTokens ErrorCode = iota + 1
	MalformedNumber
	InvalidSyntax
	ExtraTokens
)

var (
	ErrMissingTokens   = errors.New("missing tokens")
	ErrMalformedNumber = errors.New("malformed number")
	ErrInvalidSyntax   = errors.New("invalid syntax")
	ErrExtraTokens     = errors.New("extra tokens")
)

func (c ErrorCode) sentinel() error {
	switch c {
	case MissingTokens:
		return ErrMissingTokens
	case MalformedNumber:
		return ErrMalformedNumber
	case InvalidSyntax:
		return ErrInvalidSyntax
	case ExtraTokens:
		return ErrExtraTokens
	}
	return nil
}

func (c ErrorCode) String() string {
	if err := c.sentinel(); err != nil {
		return err.Error()
	}
	return "code(" + strconv.Itoa(int(c)) + ")"
}

// ParseError reports the failure class and the offending token index
type ParseError struct {
	Code  ErrorCode
	Pos   int
	Token string
}

func (e *ParseError) Error() string {
	if e.Code == MissingTokens {
		return fmt.Sprintf("grid2: parse: %s after token %d", e.Code, e.Pos)
	}
	return fmt.Sprintf("grid2: parse: %s at token %d %q", e.Code, e.Pos, e.Token)
}

// Unwrap allows errors.Is against the Err* sentinels
func (e *ParseError) Unwrap() error {
	return e.Code.sentinel()
}

// String encodes the grid in the layout text format
func (g *Grid) String() string {
	var b strings.Builder
	g.encode(&b)
	return b.String()
}

// Encode writes as much of the encoding as fits into buf and returns the
// full encoded length; pass a nil buf to measure
func (g *Grid) Encode(buf []byte) int {
	s := g.String()
	copy(buf, s)
	return len(s)
}

// MarshalText implements encoding.TextMarshaler
func (g *Grid) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse
func (g *Grid) UnmarshalText(text []byte) error {
	return Parse(string(text), g)
}

func (g *Grid) encode(b *strings.Builder) {
	if g.root == NoNode {
		b.WriteString("e")
	} else {
		b.WriteString("g")
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(g.margin))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(g.border))
	if g.root != NoNode {
		g.encodeNode(b, g.root)
	}
}

func (g *Grid) encodeNode(b *strings.Builder, id NodeID) {
	n := g.at(id)
	switch n.kind {
	case kindDivision:
		b.WriteByte(' ')
		b.WriteString(n.orient.String())
		children := n.children
		g.encodeNode(b, children[0])
		g.encodeNode(b, children[1])
	case kindSlot:
		b.WriteString(" s ")
		b.WriteString(formatWeight(n.weight.X))
		b.WriteByte(' ')
		b.WriteString(formatWeight(n.weight.Y))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(n.tag))
	}
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// Parse replaces g's tree, margin and border with the decoded layout.
// Decoded slots hold no content; rebind it with Bind. On error g is left
// unchanged and the error is a *ParseError.
func Parse(s string, g *Grid) error {
	g.defaults()
	p := parser{toks: strings.Fields(s)}

	head, err := p.next()
	if err != nil {
		return err
	}
	if head != "g" && head != "e" {
		return p.fail(InvalidSyntax)
	}
	margin, err := p.count()
	if err != nil {
		return err
	}
	border, err := p.count()
	if err != nil {
		return err
	}

	root := NoNode
	if head == "g" {
		if root, err = p.node(); err != nil {
			return err
		}
	}
	if p.pos < len(p.toks) {
		p.pos++
		return p.fail(ExtraTokens)
	}

	g.CancelGesture()
	g.arena = p.arena
	g.root = root
	g.margin = margin
	g.border = border
	g.dirty = true
	g.logger.Printf("grid2: parsed layout with %d nodes", g.live)
	g.notify(NoticeParse, root)
	return nil
}

// parser builds into a private arena so a failed parse leaves no trace
type parser struct {
	arena
	toks []string
	pos  int
}

func (p *parser) fail(code ErrorCode) error {
	e := &ParseError{Code: code, Pos: p.pos - 1}
	if p.pos > 0 && p.pos <= len(p.toks) {
		e.Token = p.toks[p.pos-1]
	}
	return e
}

func (p *parser) next() (string, error) {
	if p.pos >= len(p.toks) {
		return "", &ParseError{Code: MissingTokens, Pos: p.pos}
	}
	p.pos++
	return p.toks[p.pos-1], nil
}

// count reads a non-negative integer
func (p *parser) count() (int, error) {
	n, err := p.integer()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, p.fail(MalformedNumber)
	}
	return n, nil
}

func (p *parser) integer() (int, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, p.fail(MalformedNumber)
	}
	return n, nil
}

// weight reads a finite non-negative decimal
func (p *parser) weight() (float64, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	w, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0, p.fail(MalformedNumber)
	}
	return w, nil
}

func (p *parser) node() (NodeID, error) {
	tok, err := p.next()
	if err != nil {
		return NoNode, err
	}

	switch tok {
	case "h", "v":
		o := Horizontal
		if tok == "v" {
			o = Vertical
		}
		c0, err := p.node()
		if err != nil {
			return NoNode, err
		}
		c1, err := p.node()
		if err != nil {
			return NoNode, err
		}
		id := p.newDivision(o)
		d := &p.nodes[id]
		d.children = [2]NodeID{c0, c1}
		for i, c := range d.children {
			p.nodes[c].parent = id
			p.nodes[c].index = int8(i)
		}
		return id, nil

	case "s":
		x, err := p.weight()
		if err != nil {
			return NoNode, err
		}
		y, err := p.weight()
		if err != nil {
			return NoNode, err
		}
		tag, err := p.integer()
		if err != nil {
			return NoNode, err
		}
		id := p.newSlot(nil, tag)
		p.nodes[id].weight = geom.V2(x, y)
		return id, nil
	}
	return NoNode, p.fail(InvalidSyntax)
}
