package svgpath

import "math"

// arcToCubics converts an endpoint-parameterized elliptical arc into cubic
// segments of at most a quarter turn each.
func arcToCubics(from Point, rx, ry, rotDeg float64, large, sweep bool, to Point) []Segment {
	if from == to {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []Segment{{Op: OpLine, Pts: [3]Point{to}}}
	}

	phi := rotDeg * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// Step 1: midpoint in the rotated frame.
	dx2 := (from.X - to.X) / 2
	dy2 := (from.Y - to.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Scale radii up when they cannot span the endpoints.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: center in the rotated frame.
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	// Step 3: center in user space.
	cx := cosPhi*cxp - sinPhi*cyp + (from.X+to.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.Y+to.Y)/2

	// Step 4: start angle and sweep.
	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	mapPt := func(ux, uy float64) Point {
		x := rx * ux
		y := ry * uy
		return Point{
			X: cx + cosPhi*x - sinPhi*y,
			Y: cy + sinPhi*x + cosPhi*y,
		}
	}

	segs := make([]Segment, 0, n)
	a1 := theta
	for i := 0; i < n; i++ {
		a2 := a1 + step
		s1, c1 := math.Sincos(a1)
		s2, c2 := math.Sincos(a2)
		p1 := mapPt(c1-k*s1, s1+k*c1)
		p2 := mapPt(c2+k*s2, s2-k*c2)
		p3 := mapPt(c2, s2)
		if i == n-1 {
			p3 = to
		}
		segs = append(segs, Segment{Op: OpCubic, Pts: [3]Point{p1, p2, p3}})
		a1 = a2
	}
	return segs
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
