package cull

import (
	"errors"
	"fmt"
	"math"

	"github.com/oliverbestmann/vulp/glm"
)

// ErrDegenerate is returned for projections that do not describe a closed
// view volume, e.g. with parallel planes or non-finite coefficients.
var ErrDegenerate = errors.New("degenerate frustum")

type PlaneID int

const (
	PlaneLeft PlaneID = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar

	planeCount

	// number of unordered pairs of distinct planes
	pairCount = planeCount * (planeCount - 1) / 2
)

// Depth selects the clip space depth range of a projection.
type Depth int

const (
	// DepthNegOneToOne is the OpenGL convention, -w <= z <= w.
	DepthNegOneToOne Depth = iota

	// DepthZeroToOne is the webgpu and vulkan convention, 0 <= z <= w.
	DepthZeroToOne
)

// the three planes meeting in each corner. The indices within a triple are ascending.
var cornerPlanes = [8][3]PlaneID{
	{PlaneLeft, PlaneBottom, PlaneNear},
	{PlaneLeft, PlaneTop, PlaneNear},
	{PlaneRight, PlaneBottom, PlaneNear},
	{PlaneRight, PlaneTop, PlaneNear},
	{PlaneLeft, PlaneBottom, PlaneFar},
	{PlaneLeft, PlaneTop, PlaneFar},
	{PlaneRight, PlaneBottom, PlaneFar},
	{PlaneRight, PlaneTop, PlaneFar},
}

// relative tolerance below which three planes are treated as not meeting in a point
const singularEpsilon = 1e-6

// Frustum is the view volume of a camera. It is immutable once built and
// can be shared between goroutines.
type Frustum struct {
	// plane equations (a, b, c, d), points p with a*x + b*y + c*z + d >= 0 are inside
	planes [planeCount]glm.Vec4f

	corners [8]glm.Vec3f
}

// NewFrustum extracts the frustum of viewProj = projection * view, using
// the OpenGL depth range.
func NewFrustum(viewProj glm.Mat4f) (Frustum, error) {
	return NewFrustumWithDepth(viewProj, DepthNegOneToOne)
}

func NewFrustumWithDepth(viewProj glm.Mat4f, depth Depth) (Frustum, error) {
	var f Frustum

	row0 := viewProj.Row(0)
	row1 := viewProj.Row(1)
	row2 := viewProj.Row(2)
	row3 := viewProj.Row(3)

	f.planes[PlaneLeft] = row3.Add(row0)
	f.planes[PlaneRight] = row3.Sub(row0)
	f.planes[PlaneBottom] = row3.Add(row1)
	f.planes[PlaneTop] = row3.Sub(row1)
	f.planes[PlaneFar] = row3.Sub(row2)

	switch depth {
	case DepthZeroToOne:
		f.planes[PlaneNear] = row2
	default:
		f.planes[PlaneNear] = row3.Add(row2)
	}

	for idx, plane := range f.planes {
		if !isFinite(plane[:]) {
			return Frustum{}, fmt.Errorf("plane %d is not finite: %w", idx, ErrDegenerate)
		}
	}

	var crosses [pairCount]glm.Vec3f
	for i := range planeCount {
		for j := i + 1; j < planeCount; j++ {
			crosses[pairIndex(i, j)] = f.normal(i).Cross(f.normal(j))
		}
	}

	for idx, triple := range cornerPlanes {
		corner, ok := f.intersection(&crosses, triple[0], triple[1], triple[2])
		if !ok {
			return Frustum{}, fmt.Errorf("corner %d: %w", idx, ErrDegenerate)
		}

		f.corners[idx] = corner
	}

	return f, nil
}

// pairIndex maps the plane pair i < j to its slot in the cross product table.
func pairIndex(i, j PlaneID) int {
	return int(i*(9-i)/2 + j - 1)
}

func (f *Frustum) normal(plane PlaneID) glm.Vec3f {
	return f.planes[plane].Truncate()
}

// intersection solves for the point shared by the planes a < b < c, using
// the precomputed cross products instead of a general linear solve.
func (f *Frustum) intersection(crosses *[pairCount]glm.Vec3f, a, b, c PlaneID) (glm.Vec3f, bool) {
	bc := crosses[pairIndex(b, c)]
	det := f.normal(a).Dot(bc)

	scale := f.normal(a).Magnitude() * f.normal(b).Magnitude() * f.normal(c).Magnitude()

	// the negated comparison also rejects NaN
	if !(abs(det) > singularEpsilon*scale) {
		return glm.Vec3f{}, false
	}

	m := glm.Mat3FromColumns(
		bc,
		crosses[pairIndex(a, c)].MulScalar(-1),
		crosses[pairIndex(a, b)],
	)

	distances := glm.Vec3f{f.planes[a][3], f.planes[b][3], f.planes[c][3]}
	point := m.Transform(distances).MulScalar(-1 / det)

	return point, isFinite(point[:])
}

// Corners returns the corners ordered left-bottom-near, left-top-near,
// right-bottom-near, right-top-near and then the same for the far plane.
func (f *Frustum) Corners() [8]glm.Vec3f {
	return f.corners
}

// Contains reports whether the point lies inside or on the frustum.
func (f *Frustum) Contains(point glm.Vec3f) bool {
	p := point.Extend(1)

	for _, plane := range f.planes {
		if plane.Dot(p) < 0 {
			return false
		}
	}

	return true
}

func (f *Frustum) Intersects(box Box) bool {
	return f.IntersectsMinMax(box.Min, box.Max)
}

// IntersectsMinMax tests the box given by its minimum and maximum corner.
// The test is conservative: it never rejects a box that is visible, but it
// may accept boxes diagonally outside an edge of the frustum.
//
// See https://iquilezles.org/articles/frustumcorrect/
func (f *Frustum) IntersectsMinMax(minp, maxp glm.Vec3f) bool {
	corners := Box{Min: minp, Max: maxp}.Corners()

	// box entirely on the outer side of one plane
	for _, plane := range f.planes {
		outside := true

		for _, corner := range corners {
			if plane.Dot(corner.Extend(1)) >= 0 {
				outside = false
				break
			}
		}

		if outside {
			return false
		}
	}

	// frustum entirely on one side of the box
	for axis := range 3 {
		var above, below int

		for _, point := range f.corners {
			if point[axis] > maxp[axis] {
				above++
			}

			if point[axis] < minp[axis] {
				below++
			}
		}

		if above == len(f.corners) || below == len(f.corners) {
			return false
		}
	}

	return true
}

func isFinite(values []float32) bool {
	for _, value := range values {
		v := float64(value)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func abs(value float32) float32 {
	return float32(math.Abs(float64(value)))
}
