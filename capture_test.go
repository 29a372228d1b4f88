package sacred

// captureSurface records drawing calls for assertions. It implements
// Surface with no real output.
type captureSurface struct {
	width, height int
	initialized   bool
	disposed      bool

	lines     []capturedLine
	circles   []capturedCircle
	polygons  int
	gradients int
	texts     []string
	clears    int

	listeners map[EventType][]EventHandler
}

type capturedLine struct {
	P1, P2 Point
	Color  RGBA
	Width  float64
}

type capturedCircle struct {
	Center Point
	Radius float64
	Filled bool
}

func newCaptureSurface(width, height int) *captureSurface {
	return &captureSurface{
		width:     width,
		height:    height,
		listeners: make(map[EventType][]EventHandler),
	}
}

func (s *captureSurface) Initialize() error {
	s.initialized = true
	return nil
}

func (s *captureSurface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.emit(Event{Type: EventResize, Width: width, Height: height})
}

func (s *captureSurface) Size() (int, int) { return s.width, s.height }

func (s *captureSurface) Clear(RGBA) { s.clears++ }

func (s *captureSurface) BeginFrame() {}
func (s *captureSurface) EndFrame()   {}

func (s *captureSurface) DrawLine(p1, p2 Point, c RGBA, width float64) {
	s.lines = append(s.lines, capturedLine{P1: p1, P2: p2, Color: c, Width: width})
}

func (s *captureSurface) StrokeCircle(center Point, radius float64, c RGBA, width float64) {
	s.circles = append(s.circles, capturedCircle{Center: center, Radius: radius})
}

func (s *captureSurface) FillCircle(center Point, radius float64, c RGBA) {
	s.circles = append(s.circles, capturedCircle{Center: center, Radius: radius, Filled: true})
}

func (s *captureSurface) StrokePolygon(pts []Point, c RGBA, width float64, closed bool) {
	s.polygons++
}

func (s *captureSurface) FillPolygon(pts []Point, c RGBA) { s.polygons++ }

func (s *captureSurface) FillPolygonGradient(pts []Point, from, to RGBA, start, end Point) {
	s.gradients++
}

func (s *captureSurface) DrawText(str string, pos Point, c RGBA, size float64) {
	s.texts = append(s.texts, str)
}

func (s *captureSurface) SetGlobalAlpha(float64) {}
func (s *captureSurface) ResetGlobalAlpha()      {}

func (s *captureSurface) AddEventListener(t EventType, h EventHandler) {
	s.listeners[t] = append(s.listeners[t], h)
}

func (s *captureSurface) Dispose() error {
	s.disposed = true
	return nil
}

func (s *captureSurface) emit(e Event) {
	for _, h := range s.listeners[e.Type] {
		h(e)
	}
}

func (s *captureSurface) reset() {
	s.lines = s.lines[:0]
	s.circles = s.circles[:0]
	s.polygons = 0
	s.gradients = 0
	s.texts = s.texts[:0]
	s.clears = 0
}
