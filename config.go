package pclasso

import (
	"errors"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Config is the configuration of a Selector.
type Config struct {
	// FOV is the vertical field of view in degrees.
	FOV    float32 `yaml:"fov"`
	Aspect float32 `yaml:"aspect"`

	SurfaceDistance float32 `yaml:"surface_distance"`
	SurfaceExtent   float32 `yaml:"surface_extent"`

	Workers           int `yaml:"workers"`
	ParallelThreshold int `yaml:"parallel_threshold"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	c := NewClassifier()
	return Config{
		FOV:               60,
		Aspect:            1,
		SurfaceDistance:   defaultSurfaceDistance,
		SurfaceExtent:     defaultSurfaceExtent,
		Workers:           c.Workers,
		ParallelThreshold: c.ParallelThreshold,
	}
}

// LoadConfig reads YAML configuration. Omitted fields keep the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.FOV <= 0 || c.FOV >= 180 {
		return errors.New("fov must be in (0, 180)")
	}
	if c.Aspect <= 0 {
		return errors.New("aspect must be >0")
	}
	if c.SurfaceDistance <= 0 || c.SurfaceExtent <= 0 {
		return errors.New("surface distance and extent must be >0")
	}
	if c.Workers < 0 || c.ParallelThreshold < 0 {
		return errors.New("workers and parallel_threshold must be >=0")
	}
	return nil
}

// Lens returns the lens of the configuration.
func (c Config) Lens() Lens {
	return Lens{
		FOV:    c.FOV * math.Pi / 180,
		Aspect: c.Aspect,
	}
}

// NewSelector returns a Selector configured by c.
func (c Config) NewSelector(camera CameraSource, listener Listener) *Selector {
	p := NewProjector(c.Lens())
	p.Distance = c.SurfaceDistance
	p.Extent = c.SurfaceExtent
	s := NewSelector(camera, p, listener)
	s.Classifier = &Classifier{
		Workers:           c.Workers,
		ParallelThreshold: c.ParallelThreshold,
	}
	return s
}
