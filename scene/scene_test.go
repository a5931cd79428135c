package scene

import (
	"math"
	"testing"

	"github.com/oliverbestmann/vulp/cull"
	"github.com/oliverbestmann/vulp/glm"
	"github.com/stretchr/testify/require"
)

func TestTerrainBounds(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Size = 32

	boxes := Terrain(opts)
	require.Len(t, boxes, 32*32)

	half := float32(opts.Size) * opts.CellSize / 2

	for _, box := range boxes {
		require.Equal(t, float32(0), box.Min[1])
		require.GreaterOrEqual(t, box.Max[1], opts.MinHeight)
		require.LessOrEqual(t, box.Max[1], opts.MaxHeight)

		require.GreaterOrEqual(t, box.Min[0], -half)
		require.LessOrEqual(t, box.Max[0], half)
		require.GreaterOrEqual(t, box.Min[2], -half)
		require.LessOrEqual(t, box.Max[2], half)
	}
}

func TestTerrainIsDeterministic(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Size = 8

	require.Equal(t, Terrain(opts), Terrain(opts))
}

func TestTerrainEmpty(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Size = 0

	require.Empty(t, Terrain(opts))
}

func TestOrbitCameraEye(t *testing.T) {
	camera := DefaultOrbitCamera()
	camera.Pitch = 0
	camera.Distance = 10

	eye := camera.Eye()
	require.InDelta(t, 0, eye[0], 1e-5)
	require.InDelta(t, 0, eye[1], 1e-5)
	require.InDelta(t, 10, eye[2], 1e-5)

	camera.Orbit(glm.Rad(math.Pi/2), 0)
	eye = camera.Eye()
	require.InDelta(t, 10, eye[0], 1e-5)
	require.InDelta(t, 0, eye[2], 1e-5)
}

func TestOrbitCameraClampsPitch(t *testing.T) {
	camera := DefaultOrbitCamera()

	camera.Orbit(0, 10)
	require.Equal(t, maxPitch, camera.Pitch)

	camera.Orbit(0, -20)
	require.Equal(t, -maxPitch, camera.Pitch)
}

func TestOrbitCameraZoom(t *testing.T) {
	camera := DefaultOrbitCamera()

	camera.Zoom(0.5)
	require.InDelta(t, 30, camera.Distance, 1e-5)

	camera.Zoom(0)
	require.InDelta(t, camera.Near*2, camera.Distance, 1e-6)
}

func TestCameraSeesTarget(t *testing.T) {
	camera := DefaultOrbitCamera()

	f, err := cull.NewFrustum(camera.ViewProjection(16.0 / 9.0))
	require.NoError(t, err)

	require.True(t, f.Contains(camera.Target))
	require.True(t, f.Intersects(cull.BoxFromCenter(camera.Target, glm.Vec3f{1, 1, 1})))

	// a box behind the camera
	behind := camera.Eye().MulScalar(2)
	require.False(t, f.Intersects(cull.BoxFromCenter(behind, glm.Vec3f{1, 1, 1})))
}

func TestCameraCullsPartOfTerrain(t *testing.T) {
	camera := DefaultOrbitCamera()
	camera.Distance = 20

	f, err := cull.NewFrustum(camera.ViewProjection(1))
	require.NoError(t, err)

	boxes := Terrain(DefaultTerrainOptions())
	visible := cull.Visible(&f, boxes, nil)

	require.NotEmpty(t, visible)
	require.Less(t, len(visible), len(boxes))
}
