// Package layout implements the pagination-aware layout engine that places CV
// content blocks onto fixed-size pages through an abstract canvas.
package layout

// A4 geometry in PostScript points, matching the two-column CV design.
const (
	PageMargin = 50.0
	PageWidth  = 595.28
	PageHeight = 841.89

	ContentWidth     = PageWidth - 2*PageMargin
	LeftColumnWidth  = 160.0
	RightColumnWidth = ContentWidth - LeftColumnWidth - 30
	RightColumnStart = LeftColumnWidth + 70
)

// FormatDate renders a free-text export date for display. An empty date means
// the engagement is ongoing and renders as "Present"; everything else passes
// through unchanged.
func FormatDate(date string) string {
	if date == "" {
		return "Present"
	}
	return date
}
