package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireVec4InDelta(t *testing.T, want, got Vec4f) {
	t.Helper()

	for idx := range 4 {
		require.InDelta(t, want[idx], got[idx], 1e-5, "component %d of %v", idx, got)
	}
}

func TestMat4Identity(t *testing.T) {
	m := TranslationMat4[float32](1, 2, 3)

	require.Equal(t, m, IdentityMat4[float32]().Mul(m))
	require.Equal(t, m, m.Mul(IdentityMat4[float32]()))
	require.True(t, Mat4f{}.IsZero())
	require.False(t, m.IsZero())
}

func TestMat4Rows(t *testing.T) {
	m := TranslationMat4[float32](1, 2, 3)

	require.Equal(t, Vec4f{1, 0, 0, 1}, m.Row(0))
	require.Equal(t, Vec4f{0, 0, 1, 3}, m.Row(2))
	require.Equal(t, Vec4f{0, 1, 0, 2}, m.Row(1))
}

func TestMat4Transform(t *testing.T) {
	m := TranslationMat4[float32](1, 2, 3).Mul(ScaleMat4[float32](2, 2, 2))

	// scale first, then translate
	require.Equal(t, Vec4f{3, 4, 5, 1}, m.Transform(Vec4f{1, 1, 1, 1}))

	// directions ignore the translation
	require.Equal(t, Vec4f{2, 0, 0, 0}, m.Transform(Vec4f{1, 0, 0, 0}))
}

func TestRotations(t *testing.T) {
	quarter := Rad(math.Pi / 2)

	requireVec4InDelta(t, Vec4f{0, 0, 1, 1}, RotationXMat4[float32](quarter).Transform(Vec4f{0, 1, 0, 1}))
	requireVec4InDelta(t, Vec4f{1, 0, 0, 1}, RotationYMat4[float32](quarter).Transform(Vec4f{0, 0, 1, 1}))
}

func TestVec3Cross(t *testing.T) {
	x := Vec3f{1, 0, 0}
	y := Vec3f{0, 1, 0}

	require.Equal(t, Vec3f{0, 0, 1}, x.Cross(y))
	require.Equal(t, Vec3f{0, 0, -1}, y.Cross(x))
	require.InDelta(t, 1.0, Vec3f{3, 4, 0}.Normalize().Magnitude(), 1e-6)
}

func TestVec4Dot(t *testing.T) {
	require.Equal(t, float32(30), Vec4f{1, 2, 3, 4}.Dot(Vec4f{1, 2, 3, 4}))
	require.Equal(t, Vec3f{1, 2, 3}, Vec4f{1, 2, 3, 4}.Truncate())
}

func TestMat3(t *testing.T) {
	m := Mat3FromColumns(Vec3f{2, 0, 0}, Vec3f{0, 3, 0}, Vec3f{1, 0, 4})

	require.Equal(t, float32(24), m.Determinant())
	require.Equal(t, Vec3f{3, 3, 4}, m.Transform(Vec3f{1, 1, 1}))
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3f{3, 4, 5}
	view := LookAt(eye, Vec3f{}, Vec3f{0, 1, 0})

	requireVec4InDelta(t, Vec4f{0, 0, 0, 1}, view.Transform(eye.Extend(1)))

	// the target lies straight ahead on the negative z axis
	target := view.Transform(Vec4f{0, 0, 0, 1})
	require.InDelta(t, 0, target[0], 1e-5)
	require.InDelta(t, 0, target[1], 1e-5)
	require.InDelta(t, -eye.Magnitude(), target[2], 1e-5)
}

func TestDegrees(t *testing.T) {
	require.InDelta(t, math.Pi, float64(DegToRad(180.0)), 1e-6)
}
