package pclasso

import (
	"testing"
	"time"
)

func TestInput_Normalize(t *testing.T) {
	in := NewInput(nil, 400, 200)

	testCases := map[string]struct {
		x, y     int
		expected NormalizedCoord
	}{
		"TopLeft":     {0, 0, NormalizedCoord{-1, 1}},
		"BottomRight": {400, 200, NormalizedCoord{1, -1}},
		"Center":      {200, 100, NormalizedCoord{0, 0}},
		"Quarter":     {100, 150, NormalizedCoord{-0.5, -0.5}},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if c := in.Normalize(tt.x, tt.y); c != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, c)
			}
		})
	}

	in.Resize(0, 0)
	if c := in.Normalize(10, 10); c != (NormalizedCoord{}) {
		t.Errorf("Empty viewport must give zero coordinate, got %v", c)
	}
}

func TestInput(t *testing.T) {
	rec := &recorder{}
	s := newTestSelector(rec)
	s.SetMode(ModeSelect)

	now := time.Unix(1000, 0)
	in := NewInput(s, 400, 400)
	in.guard.now = func() time.Time { return now }

	// Square corners of the lasso in pixels.
	pixels := [][2]int{{150, 250}, {250, 250}, {250, 150}, {150, 150}}

	if !in.Click(MouseEvent{X: pixels[0][0], Y: pixels[0][1]}) {
		t.Fatal("Click must add a point")
	}

	// Camera drag
	in.MouseDown(MouseEvent{X: 10, Y: 10})
	in.MouseMove(MouseEvent{X: 50, Y: 10})
	in.MouseUp(MouseEvent{X: 50, Y: 10})
	if in.Click(MouseEvent{X: 50, Y: 10}) {
		t.Fatal("Click ending a drag must be ignored")
	}
	if len(rec.previews) != 0 {
		t.Error("Move during drag must not update the preview")
	}
	now = now.Add(time.Second)

	in.MouseMove(MouseEvent{X: 200, Y: 200})
	if len(rec.previews) != 1 {
		t.Errorf("Expected 1 preview, got %d", len(rec.previews))
	}

	for _, p := range pixels[1:] {
		in.MouseDown(MouseEvent{X: p[0], Y: p[1]})
		in.MouseUp(MouseEvent{X: p[0], Y: p[1]})
		if !in.Click(MouseEvent{X: p[0], Y: p[1]}) {
			t.Fatalf("Click at %v must add a point", p)
		}
	}
	if len(rec.results) != 1 {
		t.Fatalf("Expected one result, got %d", len(rec.results))
	}
	for i, e := range rec.edges {
		if !vecNear(e[0], squareLasso[i], 0.1) {
			t.Errorf("Expected edge %d from %v, got %v", i, squareLasso[i], e[0])
		}
	}
}
