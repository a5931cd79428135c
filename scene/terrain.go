package scene

import (
	"math/rand/v2"

	"github.com/furui/fastnoiselite-go"
	"github.com/oliverbestmann/vulp/cull"
	"github.com/oliverbestmann/vulp/glm"
)

type TerrainOptions struct {
	// Size is the number of columns along each horizontal axis
	Size int

	CellSize float32

	// MaxHeight of a column, the lowest columns are MinHeight tall
	MinHeight float32
	MaxHeight float32

	Frequency float32
	Octaves   int
	Seed      uint64
}

func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Size:      128,
		CellSize:  1,
		MinHeight: 0.25,
		MaxHeight: 12,
		Frequency: 0.02,
		Octaves:   4,
		Seed:      1,
	}
}

// Terrain builds a square field of columns centered at the origin, their
// heights following fractal noise. Columns are listed row by row.
func Terrain(opts TerrainOptions) []cull.Box {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm
	noise.Frequency = float64(opts.Frequency)
	noise.SetFractalOctaves(int32(max(opts.Octaves, 1)))

	// different seeds sample different regions of the noise
	rng := rand.New(rand.NewPCG(opts.Seed, 3))
	offsetX := rng.Float32() * 10_000
	offsetZ := rng.Float32() * 10_000

	half := float32(opts.Size) * opts.CellSize / 2

	boxes := make([]cull.Box, 0, opts.Size*opts.Size)

	for row := range opts.Size {
		for col := range opts.Size {
			x := float32(col)*opts.CellSize - half
			z := float32(row)*opts.CellSize - half

			sample := float32(noise.GetNoise2D(
				fastnoiselite.FNLfloat(x+offsetX),
				fastnoiselite.FNLfloat(z+offsetZ),
			))

			// noise is in [-1, 1]
			t := min(max((sample+1)/2, 0), 1)
			height := opts.MinHeight + t*(opts.MaxHeight-opts.MinHeight)

			boxes = append(boxes, cull.BoxFromPoints(
				glm.Vec3f{x, 0, z},
				glm.Vec3f{x + opts.CellSize, height, z + opts.CellSize},
			))
		}
	}

	return boxes
}
