package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/oliverbestmann/vecmesh/glm"
	"github.com/oliverbestmann/vecmesh/mesh"
)

var ErrInvalidLineWidth = errors.New("line width must be positive")

type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// miter joins longer than this multiple of the half line width fall back to a bevel
const defaultMiterLimit = 4

type StrokeOptions struct {
	// maximum flattening error, DefaultTolerance if zero
	Tolerance float32

	LineWidth float32
	LineJoin  LineJoin
	LineCap   LineCap

	// ratio of miter length to half the line width, defaults to 4
	MiterLimit float32

	Color glm.Vec4f
}

// StrokePath tessellates the outline of the path with the given line width
// and appends the triangles to geom.
func StrokePath(geom *mesh.Geometry, path Path, opts StrokeOptions) error {
	if path.IsEmpty() {
		return ErrEmptyPath
	}

	if !(opts.LineWidth > 0) {
		return fmt.Errorf("%w: %f", ErrInvalidLineWidth, opts.LineWidth)
	}

	if opts.Tolerance == 0 {
		opts.Tolerance = DefaultTolerance
	}

	if opts.MiterLimit == 0 {
		opts.MiterLimit = defaultMiterLimit
	}

	st := stroker{
		geom:      geom,
		opts:      opts,
		halfWidth: opts.LineWidth / 2,
		arcStep:   arcStep(opts.LineWidth/2, opts.Tolerance),
	}

	for _, contour := range path.Contours(opts.Tolerance) {
		st.contour(contour)
	}

	if len(geom.Vertices) > mesh.MaxVertices {
		return mesh.ErrTooManyVertices
	}

	return nil
}

type stroker struct {
	geom      *mesh.Geometry
	opts      StrokeOptions
	halfWidth float32

	// angle between two vertices on a round join or cap
	arcStep float32
}

func (st *stroker) contour(contour Contour) {
	points := contour.Points

	closed := contour.Closed && len(points) > 2

	if len(points) < 2 {
		return
	}

	segmentCount := len(points) - 1
	if closed {
		segmentCount = len(points)
	}

	for idx := range segmentCount {
		a := points[idx]
		b := points[(idx+1)%len(points)]

		if !closed {
			if idx == 0 && st.opts.LineCap == LineCapSquare {
				a = a.Sub(b.Sub(a).Normalize().Scale(st.halfWidth))
			}

			if idx == segmentCount-1 && st.opts.LineCap == LineCapSquare {
				b = b.Add(b.Sub(a).Normalize().Scale(st.halfWidth))
			}
		}

		st.segment(a, b)
	}

	// joins between two consecutive segments
	for idx := 1; idx < len(points)-1; idx++ {
		st.join(points[idx-1], points[idx], points[idx+1])
	}

	if closed {
		n := len(points)
		st.join(points[n-2], points[n-1], points[0])
		st.join(points[n-1], points[0], points[1])
		return
	}

	if st.opts.LineCap == LineCapRound {
		first, second := points[0], points[1]
		last, beforeLast := points[len(points)-1], points[len(points)-2]

		// half circles starting at the left side of the line
		startNormal := second.Sub(first).Normalize().Perp()
		st.arc(first, startNormal, math.Pi)

		endNormal := last.Sub(beforeLast).Normalize().Perp().Scale(-1)
		st.arc(last, endNormal, math.Pi)
	}
}

// segment emits a quad covering the line from a to b.
func (st *stroker) segment(a, b glm.Vec2f) {
	n := b.Sub(a).Normalize().Perp().Scale(st.halfWidth)

	color := st.opts.Color
	v0 := st.geom.AddVertex(a.Add(n), color)
	v1 := st.geom.AddVertex(a.Sub(n), color)
	v2 := st.geom.AddVertex(b.Add(n), color)
	v3 := st.geom.AddVertex(b.Sub(n), color)

	st.geom.AddTriangle(v0, v1, v2)
	st.geom.AddTriangle(v2, v1, v3)
}

// join fills the gap on the outside of the corner at p.
func (st *stroker) join(prev, p, next glm.Vec2f) {
	d0 := p.Sub(prev).Normalize()
	d1 := next.Sub(p).Normalize()

	cross := d0.Cross(d1)
	if d0.Dot(d1) > 0 && float32(math.Abs(float64(cross))) < 1e-6 {
		// straight line, no gap to fill
		return
	}

	// the outside of the corner is opposite of the direction we turn to
	side := float32(1)
	if cross > 0 {
		side = -1
	}

	o0 := d0.Perp().Scale(side)
	o1 := d1.Perp().Scale(side)

	color := st.opts.Color

	switch st.opts.LineJoin {
	case LineJoinRound:
		delta := float32(glm.Atan2(o1[1], o1[0]) - glm.Atan2(o0[1], o0[0]))
		st.arc(p, o0, normalizeAngle(delta))

	case LineJoinMiter:
		miter := o0.Add(o1).Normalize()

		cos := miter.Dot(o0)
		if cos > 0 && 1/cos <= st.opts.MiterLimit {
			tip := p.Add(miter.Scale(st.halfWidth / cos))

			center := st.geom.AddVertex(p, color)
			a := st.geom.AddVertex(p.Add(o0.Scale(st.halfWidth)), color)
			b := st.geom.AddVertex(tip, color)
			c := st.geom.AddVertex(p.Add(o1.Scale(st.halfWidth)), color)

			st.geom.AddTriangle(center, a, b)
			st.geom.AddTriangle(center, b, c)
			return
		}

		st.bevel(p, o0, o1)

	default:
		st.bevel(p, o0, o1)
	}
}

func (st *stroker) bevel(p, o0, o1 glm.Vec2f) {
	color := st.opts.Color

	center := st.geom.AddVertex(p, color)
	a := st.geom.AddVertex(p.Add(o0.Scale(st.halfWidth)), color)
	b := st.geom.AddVertex(p.Add(o1.Scale(st.halfWidth)), color)

	st.geom.AddTriangle(center, a, b)
}

// arc emits a triangle fan around center, starting at the given unit
// direction and rotating by delta radians.
func (st *stroker) arc(center, from glm.Vec2f, delta float32) {
	steps := int(math.Ceil(math.Abs(float64(delta / st.arcStep))))
	steps = max(1, steps)

	color := st.opts.Color
	startAngle := glm.Atan2(from[1], from[0])

	idxCenter := st.geom.AddVertex(center, color)

	prev := st.geom.AddVertex(center.Add(from.Scale(st.halfWidth)), color)
	for step := 1; step <= steps; step++ {
		angle := startAngle + glm.Rad(delta*float32(step)/float32(steps))
		pos := center.Add(glm.UnitVec2(angle).Scale(st.halfWidth))

		curr := st.geom.AddVertex(pos, color)
		st.geom.AddTriangle(idxCenter, prev, curr)
		prev = curr
	}
}

// arcStep calculates the angle between two points on a circle of the given radius,
// so that the chord deviates at most tolerance from the circle.
func arcStep(radius, tolerance float32) float32 {
	ratio := 1 - float64(tolerance/radius)
	if ratio <= 0 {
		return math.Pi / 2
	}

	return float32(max(2*math.Acos(ratio), 0.05))
}

func normalizeAngle(angle float32) float32 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}

	for angle < -math.Pi {
		angle += 2 * math.Pi
	}

	return angle
}
