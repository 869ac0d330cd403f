package pclasso

import (
	"github.com/seqsense/pcgol/mat"
)

// NormalizedCoord is a cursor position in normalized device coordinates.
// Both axes range over [-1, 1], +Y up.
type NormalizedCoord struct {
	X, Y float32
}

// Projector converts cursor positions into points on a ReferenceSurface
// which follows the camera.
type Projector struct {
	Lens     Lens
	Distance float32
	Extent   float32
}

// NewProjector returns a projector with the default surface placement.
func NewProjector(lens Lens) *Projector {
	return &Projector{
		Lens:     lens,
		Distance: defaultSurfaceDistance,
		Extent:   defaultSurfaceExtent,
	}
}

// Surface returns the reference surface for the pose.
func (p *Projector) Surface(pose CameraPose) ReferenceSurface {
	return NewReferenceSurface(pose, p.Distance, p.Extent)
}

// Project casts a ray from the camera through the cursor and returns the
// hit point on the reference surface.
// false is returned if the ray misses the surface.
func (p *Projector) Project(cursor NormalizedCoord, pose CameraPose) (mat.Vec3, bool) {
	s := p.Surface(pose)
	dir := pose.rotate(p.Lens.Ray(cursor)).Normalized()
	return s.Intersect(pose.Position, dir)
}
