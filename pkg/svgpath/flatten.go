package svgpath

import "math"

// Flatten approximates the path with polylines, one per subpath. Curves are
// subdivided until each chord is at most tol long (tol <= 0 means 0.5).
func (p Path) Flatten(tol float64) [][]Point {
	if tol <= 0 {
		tol = 0.5
	}
	var (
		lines [][]Point
		cur   []Point
		pen   Point
		start Point
	)
	flush := func() {
		if len(cur) > 1 {
			lines = append(lines, cur)
		}
		cur = nil
	}
	for _, s := range p {
		switch s.Op {
		case OpMove:
			flush()
			pen, start = s.Pts[0], s.Pts[0]
			cur = []Point{pen}
		case OpLine:
			if cur == nil {
				cur = []Point{pen}
			}
			pen = s.Pts[0]
			cur = append(cur, pen)
		case OpQuad:
			if cur == nil {
				cur = []Point{pen}
			}
			p0, c, p1 := pen, s.Pts[0], s.Pts[1]
			n := subdivisions(tol, p0, c, p1)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				mt := 1 - t
				cur = append(cur, Point{
					X: mt*mt*p0.X + 2*mt*t*c.X + t*t*p1.X,
					Y: mt*mt*p0.Y + 2*mt*t*c.Y + t*t*p1.Y,
				})
			}
			pen = p1
		case OpCubic:
			if cur == nil {
				cur = []Point{pen}
			}
			p0, c1, c2, p1 := pen, s.Pts[0], s.Pts[1], s.Pts[2]
			n := subdivisions(tol, p0, c1, c2, p1)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				mt := 1 - t
				a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
				cur = append(cur, Point{
					X: a*p0.X + b*c1.X + c*c2.X + d*p1.X,
					Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y,
				})
			}
			pen = p1
		case OpClose:
			if cur != nil && pen != start {
				cur = append(cur, start)
			}
			pen = start
			flush()
		}
	}
	flush()
	return lines
}

func subdivisions(tol float64, pts ...Point) int {
	length := 0.0
	for i := 1; i < len(pts); i++ {
		length += math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	}
	n := int(math.Ceil(length / tol))
	if n < 1 {
		return 1
	}
	if n > 64 {
		return 64
	}
	return n
}

// DistanceToSegment returns the distance from q to the segment a-b.
func DistanceToSegment(q, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(q.X-a.X, q.Y-a.Y)
	}
	t := ((q.X-a.X)*dx + (q.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(q.X-(a.X+t*dx), q.Y-(a.Y+t*dy))
}
