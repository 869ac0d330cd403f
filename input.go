package pclasso

// MouseEvent is a pointer event in viewport pixels, origin at top-left.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
}

// Input feeds viewport mouse events to a Selector.
// Clicks which end a camera drag are not treated as lasso clicks.
type Input struct {
	Selector      *Selector
	Width, Height int

	dragging bool
	guard    clickGuard
}

func NewInput(s *Selector, width, height int) *Input {
	return &Input{Selector: s, Width: width, Height: height}
}

// Resize updates the viewport size.
func (in *Input) Resize(width, height int) {
	in.Width, in.Height = width, height
}

// Normalize converts a pixel position into normalized device coordinates.
func (in *Input) Normalize(x, y int) NormalizedCoord {
	if in.Width <= 0 || in.Height <= 0 {
		return NormalizedCoord{}
	}
	return NormalizedCoord{
		X: float32(x)*2/float32(in.Width) - 1,
		Y: 1 - float32(y)*2/float32(in.Height),
	}
}

func (in *Input) MouseDown(e MouseEvent) {
	in.dragging = true
	in.guard.DragStart()
}

func (in *Input) MouseMove(e MouseEvent) {
	if in.dragging {
		in.guard.Move()
		return
	}
	in.Selector.Move(in.Normalize(e.X, e.Y))
}

func (in *Input) MouseUp(e MouseEvent) {
	if !in.dragging {
		return
	}
	in.dragging = false
	in.guard.DragEnd()
}

// Click forwards the click to the Selector.
// It returns true if a lasso point is added.
func (in *Input) Click(e MouseEvent) bool {
	if !in.guard.Click() {
		return false
	}
	return in.Selector.Click(e.Button, in.Normalize(e.X, e.Y))
}
