package cull

import "github.com/oliverbestmann/vulp/glm"

// Box is an axis aligned bounding box.
type Box struct {
	Min glm.Vec3f
	Max glm.Vec3f
}

// BoxFromPoints returns the smallest box containing both points.
func BoxFromPoints(a, b glm.Vec3f) Box {
	return Box{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

// BoxFromCenter returns a box around center extending halfSize in every direction.
func BoxFromCenter(center, halfSize glm.Vec3f) Box {
	return BoxFromPoints(center.Sub(halfSize), center.Add(halfSize))
}

func (b Box) Extend(point glm.Vec3f) Box {
	return Box{
		Min: b.Min.Min(point),
		Max: b.Max.Max(point),
	}
}

func (b Box) Union(other Box) Box {
	return b.Extend(other.Min).Extend(other.Max)
}

func (b Box) Center() glm.Vec3f {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

func (b Box) Size() glm.Vec3f {
	return b.Max.Sub(b.Min)
}

func (b Box) Contains(point glm.Vec3f) bool {
	for axis := range 3 {
		if point[axis] < b.Min[axis] || point[axis] > b.Max[axis] {
			return false
		}
	}

	return true
}

// Corners returns the eight corners of the box. Bit 0 of the index selects
// max x, bit 1 max y and bit 2 max z.
func (b Box) Corners() [8]glm.Vec3f {
	var corners [8]glm.Vec3f

	for idx := range corners {
		corner := b.Min

		if idx&1 != 0 {
			corner[0] = b.Max[0]
		}

		if idx&2 != 0 {
			corner[1] = b.Max[1]
		}

		if idx&4 != 0 {
			corner[2] = b.Max[2]
		}

		corners[idx] = corner
	}

	return corners
}
