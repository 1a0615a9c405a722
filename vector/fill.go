package vector

import (
	"errors"
	"fmt"

	earcut "github.com/oliverbestmann/earcut-go"
	"github.com/oliverbestmann/vecmesh/glm"
	"github.com/oliverbestmann/vecmesh/mesh"
)

var ErrEmptyPath = errors.New("path is empty")

// DefaultTolerance is the maximum distance in pixels between a curve
// and its flattened polyline.
const DefaultTolerance = 0.1

type FillOptions struct {
	// maximum flattening error, DefaultTolerance if zero
	Tolerance float32

	Color glm.Vec4f
}

// FillPath triangulates the interior of the given path and appends the triangles
// to geom. Sub paths are filled using the even-odd rule: a sub path inside another
// filled sub path cuts a hole, a sub path inside a hole is filled again.
func FillPath(geom *mesh.Geometry, path Path, opts FillOptions) error {
	if path.IsEmpty() {
		return ErrEmptyPath
	}

	tolerance := opts.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}

	var rings [][]glm.Vec2f
	for _, contour := range path.Contours(tolerance) {
		points := contour.Points

		// an open contour ending at its start is a closed ring for filling
		if len(points) > 1 && points[0] == points[len(points)-1] {
			points = points[:len(points)-1]
		}

		if len(points) < 3 {
			// nothing to fill
			continue
		}

		rings = append(rings, points)
	}

	for idx, region := range nestRings(rings) {
		if err := fillRegion(geom, region, opts.Color); err != nil {
			return fmt.Errorf("fill polygon %d: %w", idx, err)
		}
	}

	return nil
}

// region is an outer ring together with the rings that cut holes into it.
type region struct {
	Outer []glm.Vec2f
	Holes [][]glm.Vec2f
}

// nestRings groups the rings into regions. A ring contained in an odd number
// of other rings is a hole of the smallest ring containing it.
func nestRings(rings [][]glm.Vec2f) []region {
	depths := make([]int, len(rings))
	parents := make([]int, len(rings))

	for idx, ring := range rings {
		parents[idx] = -1

		var parentArea float32
		for otherIdx, other := range rings {
			if otherIdx == idx || !pointInRing(ring[0], other) {
				continue
			}

			depths[idx]++

			area := ringArea(other)
			if parents[idx] == -1 || area < parentArea {
				parents[idx] = otherIdx
				parentArea = area
			}
		}
	}

	var regions []region

	// index of the region by the index of its outer ring
	outers := map[int]int{}

	for idx, ring := range rings {
		if depths[idx]%2 == 0 {
			outers[idx] = len(regions)
			regions = append(regions, region{Outer: ring})
		}
	}

	for idx, ring := range rings {
		if depths[idx]%2 == 0 {
			continue
		}

		regionIdx, ok := outers[parents[idx]]
		if !ok {
			continue
		}

		regions[regionIdx].Holes = append(regions[regionIdx].Holes, ring)
	}

	return regions
}

func fillRegion(geom *mesh.Geometry, reg region, color glm.Vec4f) error {
	holes := make([][]earcut.Point[float32], 0, len(reg.Holes))
	for _, hole := range reg.Holes {
		holes = append(holes, earcutPoints(hole))
	}

	points, indices := earcut.Triangulate(earcutPoints(reg.Outer), holes)
	if len(indices) == 0 {
		// degenerated region
		return nil
	}

	if len(geom.Vertices)+len(points) > mesh.MaxVertices {
		return mesh.ErrTooManyVertices
	}

	base := geom.Base()
	for _, point := range points {
		geom.AddVertex(glm.Vec2f{point.X, point.Y}, color)
	}

	for idx := 0; idx+2 < len(indices); idx += 3 {
		geom.AddTriangle(
			base+uint16(indices[idx]),
			base+uint16(indices[idx+1]),
			base+uint16(indices[idx+2]),
		)
	}

	return nil
}

func earcutPoints(points []glm.Vec2f) []earcut.Point[float32] {
	result := make([]earcut.Point[float32], len(points))
	for idx, point := range points {
		result[idx] = earcut.Point[float32]{X: point[0], Y: point[1]}
	}

	return result
}

// pointInRing tests if p lies inside the ring using the crossing number.
func pointInRing(p glm.Vec2f, ring []glm.Vec2f) bool {
	var inside bool

	for idx := range ring {
		a := ring[idx]
		b := ring[(idx+len(ring)-1)%len(ring)]

		if (a[1] > p[1]) != (b[1] > p[1]) {
			x := a[0] + (p[1]-a[1])*(b[0]-a[0])/(b[1]-a[1])
			if p[0] < x {
				inside = !inside
			}
		}
	}

	return inside
}

// ringArea returns the unsigned area of the ring.
func ringArea(ring []glm.Vec2f) float32 {
	var area float32

	for idx := range ring {
		area += ring[idx].Cross(ring[(idx+1)%len(ring)])
	}

	return max(area, -area) / 2
}
