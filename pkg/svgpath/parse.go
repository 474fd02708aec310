package svgpath

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSyntax is returned for malformed path data.
var ErrSyntax = errors.New("svgpath: syntax error")

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) skipSep() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

// more reports whether another number follows.
func (sc *scanner) more() bool {
	sc.skipSep()
	if sc.pos >= len(sc.s) {
		return false
	}
	c := sc.s[sc.pos]
	return isDigit(c) || c == '-' || c == '+' || c == '.'
}

func (sc *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, sc.pos, fmt.Sprintf(format, args...))
}

func (sc *scanner) number() (float64, error) {
	sc.skipSep()
	start := sc.pos
	if sc.pos < len(sc.s) && (sc.s[sc.pos] == '-' || sc.s[sc.pos] == '+') {
		sc.pos++
	}
	digits := 0
	for sc.pos < len(sc.s) && isDigit(sc.s[sc.pos]) {
		sc.pos++
		digits++
	}
	if sc.pos < len(sc.s) && sc.s[sc.pos] == '.' {
		sc.pos++
		for sc.pos < len(sc.s) && isDigit(sc.s[sc.pos]) {
			sc.pos++
			digits++
		}
	}
	if digits == 0 {
		sc.pos = start
		return 0, sc.errorf("expected number")
	}
	// Exponent only counts when a digit follows.
	if sc.pos < len(sc.s) && (sc.s[sc.pos] == 'e' || sc.s[sc.pos] == 'E') {
		p := sc.pos + 1
		if p < len(sc.s) && (sc.s[p] == '-' || sc.s[p] == '+') {
			p++
		}
		if p < len(sc.s) && isDigit(sc.s[p]) {
			for p < len(sc.s) && isDigit(sc.s[p]) {
				p++
			}
			sc.pos = p
		}
	}
	v, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		return 0, sc.errorf("bad number %q", sc.s[start:sc.pos])
	}
	return v, nil
}

// flag reads an arc flag, which may be packed without separators.
func (sc *scanner) flag() (bool, error) {
	sc.skipSep()
	if sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case '0':
			sc.pos++
			return false, nil
		case '1':
			sc.pos++
			return true, nil
		}
	}
	return false, sc.errorf("expected flag")
}

func (sc *scanner) numbers(dst []float64) error {
	for i := range dst {
		v, err := sc.number()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

type parser struct {
	sc    scanner
	out   Path
	cur   Point
	start Point
	// control point of the previous curve, for S/T reflection
	ctrl    Point
	lastCmd byte
}

// Parse converts SVG path data into absolute segments.
func Parse(d string) (Path, error) {
	p := &parser{sc: scanner{s: d}}
	p.sc.skipSep()
	for p.sc.pos < len(p.sc.s) {
		c := p.sc.s[p.sc.pos]
		if !isCommand(c) {
			return nil, p.sc.errorf("unexpected %q", c)
		}
		p.sc.pos++
		if err := p.command(c); err != nil {
			return nil, err
		}
		p.sc.skipSep()
	}
	return p.out, nil
}

// MustParse is Parse that panics, for path constants.
func MustParse(d string) Path {
	path, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return path
}

func (p *parser) command(cmd byte) error {
	rel := cmd >= 'a'
	upper := cmd
	if rel {
		upper = cmd - ('a' - 'A')
	}
	if upper == 'Z' {
		p.emit(Segment{Op: OpClose})
		p.cur = p.start
		p.lastCmd = 'Z'
		return nil
	}

	first := true
	for first || p.sc.more() {
		if err := p.step(upper, rel, first); err != nil {
			return err
		}
		first = false
	}
	return nil
}

func (p *parser) abs(rel bool, x, y float64) Point {
	if rel {
		return Point{p.cur.X + x, p.cur.Y + y}
	}
	return Point{x, y}
}

func (p *parser) step(cmd byte, rel, first bool) error {
	var a [7]float64
	switch cmd {
	case 'M':
		if err := p.sc.numbers(a[:2]); err != nil {
			return err
		}
		pt := p.abs(rel, a[0], a[1])
		if first {
			p.emit(Segment{Op: OpMove, Pts: [3]Point{pt}})
			p.start = pt
		} else {
			// extra pairs after a move are implicit lines
			p.emit(Segment{Op: OpLine, Pts: [3]Point{pt}})
		}
		p.cur = pt
	case 'L':
		if err := p.sc.numbers(a[:2]); err != nil {
			return err
		}
		p.lineTo(p.abs(rel, a[0], a[1]))
	case 'H':
		if err := p.sc.numbers(a[:1]); err != nil {
			return err
		}
		x := a[0]
		if rel {
			x += p.cur.X
		}
		p.lineTo(Point{x, p.cur.Y})
	case 'V':
		if err := p.sc.numbers(a[:1]); err != nil {
			return err
		}
		y := a[0]
		if rel {
			y += p.cur.Y
		}
		p.lineTo(Point{p.cur.X, y})
	case 'C':
		if err := p.sc.numbers(a[:6]); err != nil {
			return err
		}
		p.cubicTo(p.abs(rel, a[0], a[1]), p.abs(rel, a[2], a[3]), p.abs(rel, a[4], a[5]))
	case 'S':
		if err := p.sc.numbers(a[:4]); err != nil {
			return err
		}
		c1 := p.cur
		if p.lastCmd == 'C' || p.lastCmd == 'S' {
			c1 = reflect(p.ctrl, p.cur)
		}
		p.cubicTo(c1, p.abs(rel, a[0], a[1]), p.abs(rel, a[2], a[3]))
	case 'Q':
		if err := p.sc.numbers(a[:4]); err != nil {
			return err
		}
		p.quadTo(p.abs(rel, a[0], a[1]), p.abs(rel, a[2], a[3]))
	case 'T':
		if err := p.sc.numbers(a[:2]); err != nil {
			return err
		}
		c := p.cur
		if p.lastCmd == 'Q' || p.lastCmd == 'T' {
			c = reflect(p.ctrl, p.cur)
		}
		p.quadTo(c, p.abs(rel, a[0], a[1]))
	case 'A':
		if err := p.sc.numbers(a[:3]); err != nil {
			return err
		}
		large, err := p.sc.flag()
		if err != nil {
			return err
		}
		sweep, err := p.sc.flag()
		if err != nil {
			return err
		}
		if err := p.sc.numbers(a[3:5]); err != nil {
			return err
		}
		end := p.abs(rel, a[3], a[4])
		for _, seg := range arcToCubics(p.cur, a[0], a[1], a[2], large, sweep, end) {
			p.emit(seg)
		}
		p.cur = end
	}
	p.lastCmd = cmd
	return nil
}

func (p *parser) emit(s Segment) {
	p.out = append(p.out, s)
}

func (p *parser) lineTo(pt Point) {
	p.emit(Segment{Op: OpLine, Pts: [3]Point{pt}})
	p.cur = pt
}

func (p *parser) quadTo(c, pt Point) {
	p.emit(Segment{Op: OpQuad, Pts: [3]Point{c, pt}})
	p.ctrl = c
	p.cur = pt
}

func (p *parser) cubicTo(c1, c2, pt Point) {
	p.emit(Segment{Op: OpCubic, Pts: [3]Point{c1, c2, pt}})
	p.ctrl = c2
	p.cur = pt
}

func reflect(ctrl, about Point) Point {
	return Point{2*about.X - ctrl.X, 2*about.Y - ctrl.Y}
}
