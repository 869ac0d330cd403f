package pclasso

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
)

// CameraPose is a position and orientation of a perspective camera.
// The camera looks down its local -Z axis with +Y up.
type CameraPose struct {
	Position    mat.Vec3
	Orientation mgl32.Quat
}

// CameraSource provides the latest camera pose.
// The pose may change between any two calls.
type CameraSource interface {
	CameraPose() CameraPose
}

// StaticCamera is a CameraSource returning a fixed pose.
type StaticCamera CameraPose

func (c StaticCamera) CameraPose() CameraPose {
	return CameraPose(c)
}

// NewCameraPose returns a pose with identity orientation.
func NewCameraPose(pos mat.Vec3) CameraPose {
	return CameraPose{Position: pos, Orientation: mgl32.QuatIdent()}
}

func (c CameraPose) rotate(v mat.Vec3) mat.Vec3 {
	q := c.Orientation
	if q.Len() == 0 {
		return v
	}
	return mat.Vec3(q.Normalize().Rotate(mgl32.Vec3(v)))
}

// Forward returns the view direction.
func (c CameraPose) Forward() mat.Vec3 {
	return c.rotate(mat.Vec3{0, 0, -1})
}

// Back returns the local +Z axis, opposite to the view direction.
func (c CameraPose) Back() mat.Vec3 {
	return c.rotate(mat.Vec3{0, 0, 1})
}

func (c CameraPose) Up() mat.Vec3 {
	return c.rotate(mat.Vec3{0, 1, 0})
}

func (c CameraPose) Right() mat.Vec3 {
	return c.rotate(mat.Vec3{1, 0, 0})
}

// Lens is a perspective projection.
type Lens struct {
	// FOV is the vertical field of view in radians.
	FOV float32
	// Aspect is width / height of the viewport.
	Aspect float32
}

// Ray returns the direction of the viewer ray through the given cursor
// coordinate in camera space.
func (l Lens) Ray(cursor NormalizedCoord) mat.Vec3 {
	t := float32(math.Tan(float64(l.FOV / 2)))
	return mat.Vec3{cursor.X * t * l.Aspect, cursor.Y * t, -1}
}
