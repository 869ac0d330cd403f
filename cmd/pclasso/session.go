package main

import (
	"bytes"
	"errors"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
	"gopkg.in/yaml.v3"

	"github.com/seqsense/pclasso"
)

type session struct {
	// Config is decoded from RawConfig by pclasso.LoadConfig.
	Config    pclasso.Config `yaml:"-"`
	RawConfig yaml.Node      `yaml:"config"`
	Viewport  struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"viewport"`
	Camera struct {
		Position    []float32 `yaml:"position"`
		Orientation []float32 `yaml:"orientation"` // w, x, y, z
	} `yaml:"camera"`
	Clicks [][2]int `yaml:"clicks"`
}

func readSession(r io.Reader) (*session, error) {
	s := &session{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, err
	}

	var src []byte
	if s.RawConfig.Kind != 0 && s.RawConfig.ShortTag() != "!!null" {
		b, err := yaml.Marshal(&s.RawConfig)
		if err != nil {
			return nil, err
		}
		src = b
	}
	c, err := pclasso.LoadConfig(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	s.Config = c

	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return nil, errors.New("viewport size must be >0")
	}
	if len(s.Camera.Position) != 3 {
		return nil, errors.New("camera position must have 3 elements")
	}
	switch len(s.Camera.Orientation) {
	case 0, 4:
	default:
		return nil, errors.New("camera orientation must have 4 elements")
	}
	return s, nil
}

func (s *session) pose() pclasso.CameraPose {
	p := s.Camera.Position
	pose := pclasso.NewCameraPose(mat.Vec3{p[0], p[1], p[2]})
	if o := s.Camera.Orientation; len(o) == 4 {
		pose.Orientation = mgl32.Quat{W: o[0], V: mgl32.Vec3{o[1], o[2], o[3]}}.Normalize()
	}
	return pose
}
