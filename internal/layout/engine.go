package layout

// State tracks where the engine is in its page-flow state machine.
type State int

const (
	// StateOnPage is normal flow: content is placed at the cursor.
	StateOnPage State = iota
	// StatePageBreakPending is entered when the next block's estimated
	// height would overflow the current page; left again once the canvas
	// has started a new page.
	StatePageBreakPending
	// StateComplete is terminal: the last content block has been drawn.
	StateComplete
)

// Engine places content blocks onto pages through an abstract canvas. It
// tracks the current vertical position, gates each block with an estimated
// height before drawing, and advances by the actual height the canvas
// reports after drawing.
type Engine struct {
	canvas Canvas
	y      float64
	state  State
}

// NewEngine creates an engine positioned at the top margin of the first page.
func NewEngine(canvas Canvas) *Engine {
	return &Engine{canvas: canvas, y: PageMargin, state: StateOnPage}
}

// Y returns the current vertical position.
func (e *Engine) Y() float64 {
	return e.y
}

// SetY moves the cursor to an absolute vertical position on the current
// page. Used for column starts, not for flow.
func (e *Engine) SetY(y float64) {
	e.y = y
}

// State returns the engine's current state.
func (e *Engine) State() State {
	return e.state
}

// EnsureSpace is the pre-draw admission-control gate: when estimated height
// would overflow the current page, it starts a new page and resets the
// cursor to the top margin. The estimate is never used to advance the
// cursor; drawing does that with actual heights.
func (e *Engine) EnsureSpace(estimated float64) {
	if e.y+estimated > e.canvas.PageContentHeight() {
		e.state = StatePageBreakPending
		e.canvas.StartNewPage()
		e.y = PageMargin
		e.state = StateOnPage
	}
}

// DrawText draws a text run at the cursor and advances by the occupied
// height the canvas reports.
func (e *Engine) DrawText(text string, x, width float64, style TextStyle) {
	e.y += e.canvas.DrawText(text, x, e.y, width, style)
}

// DrawTextAt draws a text run at an explicit vertical position without
// moving the cursor. Used for runs that share a line, like a title with its
// trailing date range.
func (e *Engine) DrawTextAt(text string, x, y, width float64, style TextStyle) {
	e.canvas.DrawText(text, x, y, width, style)
}

// DrawImage places an image at the cursor and advances past it.
func (e *Engine) DrawImage(ref string, x, width float64) {
	e.y += e.canvas.DrawImage(ref, x, e.y, width)
}

// Advance moves the cursor down by a fixed spacing amount.
func (e *Engine) Advance(h float64) {
	e.y += h
}

// Finish marks the document complete. No further blocks may be placed.
func (e *Engine) Finish() {
	e.state = StateComplete
}
