package scene

import (
	"math"

	"github.com/oliverbestmann/vulp/glm"
)

// keeps the camera from flipping over the poles
const maxPitch = glm.Rad(89 * math.Pi / 180)

var up = glm.Vec3f{0, 1, 0}

// OrbitCamera looks at Target from a point on a sphere around it.
type OrbitCamera struct {
	Target   glm.Vec3f
	Distance float32

	// Yaw rotates around the y axis, Pitch lifts the camera above the target
	Yaw   glm.Rad
	Pitch glm.Rad

	FovY      glm.Rad
	Near, Far float32
}

func DefaultOrbitCamera() OrbitCamera {
	return OrbitCamera{
		Distance: 60,
		Pitch:    glm.DegToRad(30.0),
		FovY:     glm.DegToRad(60.0),
		Near:     0.1,
		Far:      200,
	}
}

// Eye returns the position of the camera.
func (c OrbitCamera) Eye() glm.Vec3f {
	// pitch first, then swing the result around the y axis
	rotation := glm.RotationYMat4[float32](c.Yaw).Mul(glm.RotationXMat4[float32](-c.Pitch))
	offset := rotation.Transform(glm.Vec4f{0, 0, 1, 0}).Truncate()

	return c.Target.Add(offset.MulScalar(c.Distance))
}

func (c OrbitCamera) View() glm.Mat4f {
	return glm.LookAt(c.Eye(), c.Target, up)
}

func (c OrbitCamera) Projection(aspect float32) glm.Mat4f {
	return glm.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view, as expected by cull.NewFrustum.
func (c OrbitCamera) ViewProjection(aspect float32) glm.Mat4f {
	return c.Projection(aspect).Mul(c.View())
}

// Orbit rotates the camera around its target.
func (c *OrbitCamera) Orbit(yaw, pitch glm.Rad) {
	c.Yaw += yaw
	c.Pitch = min(max(c.Pitch+pitch, -maxPitch), maxPitch)
}

// Zoom scales the distance to the target, staying in front of the near plane.
func (c *OrbitCamera) Zoom(factor float32) {
	c.Distance = max(c.Distance*factor, c.Near*2)
}
