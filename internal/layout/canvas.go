package layout

// TextStyle carries the style attributes a canvas needs to draw one text run.
type TextStyle struct {
	Font      string  // family, e.g. "Helvetica"
	Size      float64 // point size
	Bold      bool
	Color     string // CSS-style color, empty means default
	LineGap   float64
	Align     string // "left", "justify"; empty means left
	Link      string // non-empty renders the run as a hyperlink
	Underline bool
}

// Canvas is the abstract page surface a rendering backend exposes. The layout
// engine depends only on this interface, never on a concrete backend, so the
// same pagination algorithm drives every output format.
type Canvas interface {
	// PageContentHeight returns the vertical position past which content
	// overflows the page (page height minus the bottom margin).
	PageContentHeight() float64

	// StartNewPage begins a new physical page.
	StartNewPage()

	// DrawText draws text at (x, y), wrapped to width, and returns the
	// vertical extent actually occupied (line count times line height plus
	// the style's gap).
	DrawText(text string, x, y, width float64, style TextStyle) float64

	// DrawImage places an image with its top-left corner at (x, y), scaled
	// to width, and returns the occupied vertical extent.
	DrawImage(ref string, x, y, width float64) float64

	// MeasureWrappedLines reports how many lines text wraps to at width for
	// the given style.
	MeasureWrappedLines(text string, width float64, style TextStyle) int
}
