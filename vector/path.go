package vector

import (
	"math"

	"github.com/oliverbestmann/vecmesh/glm"
)

type operationType uint32

const (
	opMove       operationType = 1
	opLine       operationType = 2
	opQuadCurve  operationType = 3
	opCubicCurve operationType = 4
	opClose      operationType = 5
)

// limits the recursion when flattening degenerated curves
const maxSubdivisionDepth = 16

type pathOp struct {
	Type    operationType
	End     glm.Vec2f
	Control [2]glm.Vec2f
}

// Path describes one or more sub paths made of lines and bezier curves.
// The zero value is an empty path, ready to use.
type Path struct {
	ops []pathOp
}

func (p *Path) MoveTo(pos glm.Vec2f) {
	p.ops = append(p.ops, pathOp{
		Type: opMove,
		End:  pos,
	})
}

func (p *Path) LineTo(pos glm.Vec2f) {
	p.ops = append(p.ops, pathOp{
		Type: opLine,
		End:  pos,
	})
}

// Close closes the current sub path with a straight line to its start.
func (p *Path) Close() {
	p.ops = append(p.ops, pathOp{
		Type: opClose,
	})
}

func (p *Path) QuadCurveTo(control, end glm.Vec2f) {
	p.ops = append(p.ops, pathOp{
		Type:    opQuadCurve,
		End:     end,
		Control: [2]glm.Vec2f{control},
	})
}

func (p *Path) CubicCurveTo(control1, control2, end glm.Vec2f) {
	p.ops = append(p.ops, pathOp{
		Type:    opCubicCurve,
		End:     end,
		Control: [2]glm.Vec2f{control1, control2},
	})
}

func (p *Path) IsEmpty() bool {
	return len(p.ops) == 0
}

// Transform returns a copy of the path with all points transformed by the given matrix.
func (p *Path) Transform(tr glm.Mat3f) Path {
	ops := make([]pathOp, len(p.ops))
	for idx, op := range p.ops {
		if op.Type != opClose {
			op.End = tr.Transform2(op.End)
		}

		switch op.Type {
		case opCubicCurve:
			op.Control[1] = tr.Transform2(op.Control[1])
			fallthrough
		case opQuadCurve:
			op.Control[0] = tr.Transform2(op.Control[0])
		}

		ops[idx] = op
	}

	return Path{ops: ops}
}

// Contour is a flattened sub path. For closed contours the first
// point is not repeated at the end.
type Contour struct {
	Points []glm.Vec2f
	Closed bool
}

// Contours flattens the path into polylines, one per sub path. Curves are
// subdivided until they deviate at most tolerance pixels from the polyline.
func (p *Path) Contours(tolerance float32) []Contour {
	tolerance = max(tolerance, 0.001)

	var contours []Contour
	var current Contour

	var start, curr glm.Vec2f

	finish := func(closed bool) {
		current.Points = dedupe(current.Points)

		if closed && len(current.Points) > 1 && current.Points[0] == current.Points[len(current.Points)-1] {
			current.Points = current.Points[:len(current.Points)-1]
		}

		current.Closed = closed

		if len(current.Points) > 0 {
			contours = append(contours, current)
		}

		current = Contour{}
	}

	for _, op := range p.ops {
		switch op.Type {
		case opMove:
			finish(false)

			current.Points = append(current.Points, op.End)
			start = op.End
			curr = op.End
			continue

		case opClose:
			finish(true)

			// drawing continues at the start of the closed sub path
			curr = start
			continue
		}

		if len(current.Points) == 0 {
			// implicit move to the current position
			current.Points = append(current.Points, curr)
			start = curr
		}

		switch op.Type {
		case opLine:
			current.Points = append(current.Points, op.End)

		case opQuadCurve:
			adaptiveQuadCurve(curr, op.Control[0], op.End, tolerance, 0, &current.Points)

		case opCubicCurve:
			adaptiveCubicCurve(curr, op.Control[0], op.Control[1], op.End, tolerance, 0, &current.Points)
		}

		curr = op.End
	}

	finish(false)

	return contours
}

func dedupe(points []glm.Vec2f) []glm.Vec2f {
	if len(points) == 0 {
		return points
	}

	pointsClean := points[:1]

	prev := points[0]
	for _, point := range points[1:] {
		if prev == point {
			continue
		}

		pointsClean = append(pointsClean, point)
		prev = point
	}

	return pointsClean
}

// adaptiveQuadCurve appends the flattened curve, excluding the start point p0.
func adaptiveQuadCurve(p0, p1, p2 glm.Vec2f, flatness float32, depth int, out *[]glm.Vec2f) {
	if depth >= maxSubdivisionDepth || quadFlatEnough(p0, p1, p2, flatness) {
		*out = append(*out, p2)
		return
	}

	q0 := mid(p0, p1)
	q1 := mid(p1, p2)
	m := mid(q0, q1)

	adaptiveQuadCurve(p0, q0, m, flatness, depth+1, out)
	adaptiveQuadCurve(m, q1, p2, flatness, depth+1, out)
}

// adaptiveCubicCurve appends the flattened curve, excluding the start point p0.
func adaptiveCubicCurve(p0, p1, p2, p3 glm.Vec2f, flatness float32, depth int, out *[]glm.Vec2f) {
	if depth >= maxSubdivisionDepth || cubicFlatEnough(p0, p1, p2, p3, flatness) {
		*out = append(*out, p3)
		return
	}

	q0 := mid(p0, p1)
	q1 := mid(p1, p2)
	q2 := mid(p2, p3)

	r0 := mid(q0, q1)
	r1 := mid(q1, q2)

	s := mid(r0, r1)

	adaptiveCubicCurve(p0, q0, r0, s, flatness, depth+1, out)
	adaptiveCubicCurve(s, r1, q2, p3, flatness, depth+1, out)
}

func quadFlatEnough(p0, p1, p2 glm.Vec2f, threshold float32) bool {
	return pointLineDistance(p1, p0, p2) <= threshold
}

func cubicFlatEnough(p0, p1, p2, p3 glm.Vec2f, threshold float32) bool {
	// Distance of p1 and p2 from the line p0-p3
	d1 := pointLineDistance(p1, p0, p3)
	d2 := pointLineDistance(p2, p0, p3)
	return d1 <= threshold && d2 <= threshold
}

func mid(a, b glm.Vec2f) glm.Vec2f {
	return glm.Vec2f{(a[0] + b[0]) * 0.5, (a[1] + b[1]) * 0.5}
}

func pointLineDistance(p, a, b glm.Vec2f) float32 {
	ab := b.Sub(a)
	ap := p.Sub(a)

	lenSqr := ab.LengthSqr()
	if lenSqr == 0 {
		// line degenerated to a point
		return ap.Length()
	}

	// Project AP onto AB
	t := ap.Dot(ab) / lenSqr

	// Closest point on AB
	closest := a.Add(ab.Scale(t))

	dx := p[0] - closest[0]
	dy := p[1] - closest[1]
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}
