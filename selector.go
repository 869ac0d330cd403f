package pclasso

import (
	"io"
	"log"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

type Mode int

const (
	ModeNone Mode = iota
	ModeSelect
)

type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonAuxiliary
	ButtonSecondary
)

// Result is a computed selection.
type Result struct {
	// Indices of the selected candidates in ascending order.
	Indices []int
	// Inverted is true if the selection came from the inverted region.
	Inverted bool
	// Attempts is the number of regions built.
	Attempts int
}

type SelectorState int

const (
	StateIdle SelectorState = iota
	StateCollecting
	StateResolving
)

func (s SelectorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateResolving:
		return "resolving"
	}
	return "unknown"
}

type selectorState interface {
	state() SelectorState
}

type stateIdle struct{}

type stateCollecting struct {
	acc *Accumulator
}

type stateResolving struct {
	polygon []mat.Vec3
}

func (stateIdle) state() SelectorState       { return StateIdle }
func (stateCollecting) state() SelectorState { return StateCollecting }
func (stateResolving) state() SelectorState  { return StateResolving }

// Selector runs the lasso selection process.
// It is not safe for concurrent use.
type Selector struct {
	Projector  *Projector
	Classifier *Classifier
	Logger     *log.Logger

	camera     CameraSource
	candidates pc.Vec3RandomAccessor
	listener   Listener

	st selectorState
}

// NewSelector returns an idle selector. listener may be nil.
func NewSelector(camera CameraSource, projector *Projector, listener Listener) *Selector {
	if listener == nil {
		listener = &ListenerFuncs{}
	}
	return &Selector{
		Projector:  projector,
		Classifier: NewClassifier(),
		Logger:     log.New(io.Discard, "", 0),
		camera:     camera,
		listener:   listener,
		st:         stateIdle{},
	}
}

func (s *Selector) State() SelectorState {
	return s.st.state()
}

// Points returns the lasso points collected so far.
func (s *Selector) Points() []mat.Vec3 {
	switch st := s.st.(type) {
	case stateCollecting:
		return st.acc.Points()
	case stateResolving:
		return append([]mat.Vec3{}, st.polygon...)
	}
	return nil
}

// SetCandidates replaces the candidate points.
// Index of the point is used as the identifier in Result.
func (s *Selector) SetCandidates(ra pc.Vec3RandomAccessor) {
	s.candidates = ra
}

// SetMode starts the selection on ModeSelect and cancels it on other modes.
// Entering ModeSelect always starts from an empty polygon.
func (s *Selector) SetMode(m Mode) {
	switch m {
	case ModeSelect:
		switch st := s.st.(type) {
		case stateCollecting:
			st.acc.Reset()
		case stateIdle:
			s.st = stateCollecting{acc: NewAccumulator()}
		default:
			return
		}
		s.listener.PolygonCleared()
	default:
		if _, ok := s.st.(stateCollecting); ok {
			s.st = stateIdle{}
			s.listener.PolygonCleared()
		}
	}
}

// Move updates the preview edge from the last lasso point to the cursor.
func (s *Selector) Move(cursor NormalizedCoord) {
	st, ok := s.st.(stateCollecting)
	if !ok {
		return
	}
	last, ok := st.acc.Last()
	if !ok {
		return
	}
	p, ok := s.Projector.Project(cursor, s.camera.CameraPose())
	if !ok {
		return
	}
	s.listener.PreviewEdge(last, p)
}

// Click adds a lasso point under the cursor.
// The selection is computed when the polygon is closed.
// It returns false if the click was not accepted.
func (s *Selector) Click(button MouseButton, cursor NormalizedCoord) bool {
	if button != ButtonPrimary {
		return false
	}
	st, ok := s.st.(stateCollecting)
	if !ok {
		return false
	}
	p, ok := s.Projector.Project(cursor, s.camera.CameraPose())
	if !ok {
		return false
	}
	state, edges := st.acc.Add(p)
	for _, e := range edges {
		s.listener.EdgeAdded(e[0], e[1])
	}
	if state != Complete {
		return true
	}

	polygon := st.acc.Points()
	s.st = stateResolving{polygon: polygon}
	s.listener.SelectionEnded()

	res, err := s.Resolve(polygon)
	if err != nil {
		s.Logger.Printf("lasso selection failed: %v", err)
		res = Result{}
	}
	s.st = stateIdle{}
	s.listener.SelectionComputed(res)
	return true
}

// Resolve selects the candidates inside the region spanned by the camera
// and the polygon. If nothing is selected, the region with the reversed
// winding is tried once.
func (s *Selector) Resolve(polygon []mat.Vec3) (Result, error) {
	apex := s.camera.CameraPose().Position

	var res Result
	for _, inverted := range []bool{false, true} {
		r, err := BuildRegion(polygon, apex, inverted)
		if err != nil {
			return Result{}, err
		}
		res.Attempts++
		res.Inverted = inverted
		res.Indices = s.Classifier.SelectAll(s.candidates, r)
		if len(res.Indices) > 0 {
			break
		}
	}
	s.Logger.Printf("lasso selected %d points (attempts: %d, inverted: %v)",
		len(res.Indices), res.Attempts, res.Inverted)
	return res, nil
}
