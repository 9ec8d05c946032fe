package layout

// Per-block base heights for the page-break estimator, in points. The
// estimator is a deliberately crude linear proxy for wrapped-line count:
// exact glyph metrics are not available before drawing on every backend, and
// the established pagination of the rendered CV depends on these exact
// numbers.
const (
	positionBaseHeight  = 120.0
	projectBaseHeight   = 80.0
	educationBaseHeight = 100.0
	skillsBaseHeight    = 40.0

	// estimateCharsPerPoint divides free-text length into estimated extra
	// vertical points.
	estimateCharsPerPoint = 5.0

	sectionHeaderHeight = 30.0
)

// EstimatePositionHeight estimates the vertical extent of one experience
// entry before it is drawn.
func EstimatePositionHeight(description string) float64 {
	return positionBaseHeight + float64(len(description))/estimateCharsPerPoint
}

// EstimateProjectHeight estimates the vertical extent of one project entry.
func EstimateProjectHeight(description string) float64 {
	return projectBaseHeight + float64(len(description))/estimateCharsPerPoint
}

// EstimateEducationHeight estimates the vertical extent of one education
// entry from its notes text.
func EstimateEducationHeight(notes string) float64 {
	return educationBaseHeight + float64(len(notes))/estimateCharsPerPoint
}

// EstimateSkillsHeight estimates the vertical extent of one skill-category
// line from the joined skill text.
func EstimateSkillsHeight(joined string) float64 {
	return skillsBaseHeight + float64(len(joined))/estimateCharsPerPoint
}
