package pclasso

import (
	"github.com/seqsense/pcgol/mat"
)

const (
	defaultSurfaceDistance = 2000.0
	defaultSurfaceExtent   = 2000.0
)

// ReferenceSurface is a square patch kept in front of the camera,
// perpendicular to the view direction.
type ReferenceSurface struct {
	Center mat.Vec3
	Normal mat.Vec3 // points back towards the camera
	Right  mat.Vec3
	Up     mat.Vec3
	Extent float32 // side length
}

// NewReferenceSurface places a surface at distance in front of the pose.
func NewReferenceSurface(pose CameraPose, distance, extent float32) ReferenceSurface {
	back := pose.Back()
	return ReferenceSurface{
		Center: pose.Position.Sub(back.Mul(distance)),
		Normal: back,
		Right:  pose.Right(),
		Up:     pose.Up(),
		Extent: extent,
	}
}

// Intersect returns the point where the ray hits the patch.
func (s ReferenceSurface) Intersect(origin, dir mat.Vec3) (mat.Vec3, bool) {
	denom := s.Normal.Dot(dir)
	if nearZero(denom) {
		return mat.Vec3{}, false
	}
	t := s.Normal.Dot(s.Center.Sub(origin)) / denom
	if t <= 0 {
		return mat.Vec3{}, false
	}
	p := origin.Add(dir.Mul(t))

	rel := p.Sub(s.Center)
	half := s.Extent / 2
	if u := rel.Dot(s.Right); u < -half || half < u {
		return mat.Vec3{}, false
	}
	if v := rel.Dot(s.Up); v < -half || half < v {
		return mat.Vec3{}, false
	}
	return p, true
}

const epsilon = 1e-6

func nearZero(a float32) bool {
	return -epsilon < a && a < epsilon
}
