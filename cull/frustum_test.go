package cull

import (
	"testing"

	"github.com/oliverbestmann/vulp/glm"
	"github.com/stretchr/testify/require"
)

func requireVecInDelta(t *testing.T, want, got glm.Vec3f, delta float64) {
	t.Helper()

	for axis := range 3 {
		require.InDelta(t, want[axis], got[axis], delta, "axis %d of %v", axis, got)
	}
}

func testPerspective() glm.Mat4f {
	return glm.Perspective[float32](glm.DegToRad(90.0), 1, 1, 10)
}

func TestIdentityFrustumIsClipCube(t *testing.T) {
	f, err := NewFrustum(glm.IdentityMat4[float32]())
	require.NoError(t, err)

	corners := f.Corners()
	requireVecInDelta(t, glm.Vec3f{-1, -1, -1}, corners[0], 1e-6)
	requireVecInDelta(t, glm.Vec3f{-1, 1, -1}, corners[1], 1e-6)
	requireVecInDelta(t, glm.Vec3f{1, -1, -1}, corners[2], 1e-6)
	requireVecInDelta(t, glm.Vec3f{1, 1, -1}, corners[3], 1e-6)
	requireVecInDelta(t, glm.Vec3f{-1, -1, 1}, corners[4], 1e-6)
	requireVecInDelta(t, glm.Vec3f{1, 1, 1}, corners[7], 1e-6)

	require.True(t, f.Intersects(BoxFromPoints(glm.Vec3f{-0.5, -0.5, -0.5}, glm.Vec3f{0.5, 0.5, 0.5})))
	require.True(t, f.Intersects(BoxFromPoints(glm.Vec3f{0.5, 0.5, 0.5}, glm.Vec3f{3, 3, 3})))
	require.False(t, f.Intersects(BoxFromPoints(glm.Vec3f{2, 2, 2}, glm.Vec3f{3, 3, 3})))
	require.False(t, f.Intersects(BoxFromPoints(glm.Vec3f{-0.5, -0.5, 1.5}, glm.Vec3f{0.5, 0.5, 2})))

	// a box enclosing the whole frustum
	require.True(t, f.Intersects(BoxFromPoints(glm.Vec3f{-5, -5, -5}, glm.Vec3f{5, 5, 5})))
}

func TestPerspectiveCorners(t *testing.T) {
	f, err := NewFrustum(testPerspective())
	require.NoError(t, err)

	corners := f.Corners()
	requireVecInDelta(t, glm.Vec3f{-1, -1, -1}, corners[0], 1e-4)
	requireVecInDelta(t, glm.Vec3f{1, 1, -1}, corners[3], 1e-4)
	requireVecInDelta(t, glm.Vec3f{-10, -10, -10}, corners[4], 1e-3)
	requireVecInDelta(t, glm.Vec3f{10, 10, -10}, corners[7], 1e-3)
}

func TestPerspectiveZeroToOneCorners(t *testing.T) {
	proj := glm.PerspectiveZO[float32](glm.DegToRad(90.0), 1, 1, 10)

	f, err := NewFrustumWithDepth(proj, DepthZeroToOne)
	require.NoError(t, err)

	corners := f.Corners()
	requireVecInDelta(t, glm.Vec3f{-1, -1, -1}, corners[0], 1e-4)
	requireVecInDelta(t, glm.Vec3f{10, 10, -10}, corners[7], 1e-3)
}

func TestCornersLieOnTheirPlanes(t *testing.T) {
	view := glm.LookAt(glm.Vec3f{3, 4, 5}, glm.Vec3f{0, 0, 0}, glm.Vec3f{0, 1, 0})
	proj := glm.Perspective[float32](glm.DegToRad(60.0), 16.0/9.0, 0.5, 50)

	f, err := NewFrustum(proj.Mul(view))
	require.NoError(t, err)

	corners := f.Corners()
	for idx, triple := range cornerPlanes {
		for _, planeID := range triple {
			plane := f.planes[planeID]
			distance := plane.Dot(corners[idx].Extend(1)) / plane.Truncate().Magnitude()
			require.InDelta(t, 0, distance, 1e-3, "corner %d plane %d", idx, planeID)
		}
	}

	var center glm.Vec3f
	for _, corner := range corners {
		center = center.Add(corner)
	}

	require.True(t, f.Contains(center.MulScalar(1.0/8.0)))
}

func TestPerspectiveIntersects(t *testing.T) {
	f, err := NewFrustum(testPerspective())
	require.NoError(t, err)

	cases := []struct {
		name    string
		box     Box
		visible bool
	}{
		{"ahead", BoxFromPoints(glm.Vec3f{-1, -1, -6}, glm.Vec3f{1, 1, -4}), true},
		{"behind camera", BoxFromPoints(glm.Vec3f{-1, -1, 4}, glm.Vec3f{1, 1, 6}), false},
		{"beyond far plane", BoxFromPoints(glm.Vec3f{-1, -1, -30}, glm.Vec3f{1, 1, -20}), false},
		{"far to the right", BoxFromPoints(glm.Vec3f{50, -1, -6}, glm.Vec3f{60, 1, -4}), false},
		{"far above", BoxFromPoints(glm.Vec3f{-1, 50, -6}, glm.Vec3f{1, 60, -4}), false},
		{"straddles near plane", BoxFromPoints(glm.Vec3f{-0.5, -0.5, -2}, glm.Vec3f{0.5, 0.5, 2}), true},
		{"contains camera", BoxFromCenter(glm.Vec3f{}, glm.Vec3f{100, 100, 100}), true},
		{"flat", BoxFromPoints(glm.Vec3f{-1, 0, -5}, glm.Vec3f{1, 0, -5}), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.visible, f.Intersects(tc.box))
			require.Equal(t, tc.visible, f.IntersectsMinMax(tc.box.Min, tc.box.Max))
		})
	}
}

func TestContains(t *testing.T) {
	f, err := NewFrustum(testPerspective())
	require.NoError(t, err)

	require.True(t, f.Contains(glm.Vec3f{0, 0, -5}))
	require.False(t, f.Contains(glm.Vec3f{0, 0, 5}))
	require.False(t, f.Contains(glm.Vec3f{0, 0, -0.5}))
	require.False(t, f.Contains(glm.Vec3f{8, 0, -5}))
}

func TestDegenerateFrustum(t *testing.T) {
	cases := map[string]glm.Mat4f{
		"zero":          {},
		"collapsed x":   glm.ScaleMat4[float32](0, 1, 1),
		"empty ortho":   glm.Ortho[float32](0, 0, -1, 1, -1, 1),
		"infinite fovY": glm.Perspective[float32](0, 1, 1, 10),
	}

	for name, viewProj := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewFrustum(viewProj)
			require.ErrorIs(t, err, ErrDegenerate)
		})
	}
}

func TestPairIndexIsDense(t *testing.T) {
	seen := map[int]bool{}

	for i := range planeCount {
		for j := i + 1; j < planeCount; j++ {
			idx := pairIndex(i, j)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, int(pairCount))
			require.False(t, seen[idx])
			seen[idx] = true
		}
	}

	require.Len(t, seen, int(pairCount))
}
