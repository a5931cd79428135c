package cull

import (
	"context"
	"testing"

	"github.com/oliverbestmann/vulp/glm"
	"github.com/stretchr/testify/require"
)

func gridBoxes(size int) []Box {
	var boxes []Box

	for x := range size {
		for z := range size {
			center := glm.Vec3f{float32(x - size/2), 0, float32(z - size/2)}
			boxes = append(boxes, BoxFromCenter(center, glm.Vec3f{0.4, 0.4, 0.4}))
		}
	}

	return boxes
}

func TestVisibleParallelMatchesSequential(t *testing.T) {
	f, err := NewFrustum(testPerspective())
	require.NoError(t, err)

	boxes := gridBoxes(80)

	sequential := Visible(&f, boxes, nil)
	require.NotEmpty(t, sequential)
	require.Less(t, len(sequential), len(boxes))

	for _, workers := range []int{0, 1, 3, 8} {
		parallel, err := VisibleParallel(context.Background(), &f, boxes, workers)
		require.NoError(t, err)
		require.Equal(t, sequential, parallel, "workers=%d", workers)
	}
}

func TestVisibleAppends(t *testing.T) {
	f, err := NewFrustum(glm.IdentityMat4[float32]())
	require.NoError(t, err)

	boxes := []Box{
		BoxFromCenter(glm.Vec3f{5, 5, 5}, glm.Vec3f{1, 1, 1}),
		BoxFromCenter(glm.Vec3f{0, 0, 0}, glm.Vec3f{1, 1, 1}),
	}

	require.Equal(t, []int{42, 1}, Visible(&f, boxes, []int{42}))
}

func TestVisibleParallelCanceled(t *testing.T) {
	f, err := NewFrustum(testPerspective())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = VisibleParallel(ctx, &f, gridBoxes(80), 4)
	require.ErrorIs(t, err, context.Canceled)
}
