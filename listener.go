package pclasso

import (
	"github.com/seqsense/pcgol/mat"
)

// Listener receives events of a Selector.
// Callbacks are called synchronously from the Selector methods.
type Listener interface {
	// EdgeAdded is called for each new edge of the lasso polygon.
	EdgeAdded(a, b mat.Vec3)
	// PreviewEdge is called on cursor move with the last lasso point and
	// the point under the cursor.
	PreviewEdge(a, b mat.Vec3)
	// PolygonCleared is called when the collected points are discarded.
	PolygonCleared()
	// SelectionEnded is called when the polygon is closed, before the
	// selection is computed.
	SelectionEnded()
	// SelectionComputed is called with the final selection.
	SelectionComputed(Result)
}

// ListenerFuncs is a Listener calling the non-nil functions.
type ListenerFuncs struct {
	OnEdgeAdded         func(a, b mat.Vec3)
	OnPreviewEdge       func(a, b mat.Vec3)
	OnPolygonCleared    func()
	OnSelectionEnded    func()
	OnSelectionComputed func(Result)
}

func (l *ListenerFuncs) EdgeAdded(a, b mat.Vec3) {
	if l.OnEdgeAdded != nil {
		l.OnEdgeAdded(a, b)
	}
}

func (l *ListenerFuncs) PreviewEdge(a, b mat.Vec3) {
	if l.OnPreviewEdge != nil {
		l.OnPreviewEdge(a, b)
	}
}

func (l *ListenerFuncs) PolygonCleared() {
	if l.OnPolygonCleared != nil {
		l.OnPolygonCleared()
	}
}

func (l *ListenerFuncs) SelectionEnded() {
	if l.OnSelectionEnded != nil {
		l.OnSelectionEnded()
	}
}

func (l *ListenerFuncs) SelectionComputed(r Result) {
	if l.OnSelectionComputed != nil {
		l.OnSelectionComputed(r)
	}
}
