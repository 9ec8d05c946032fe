package transform

import (
	"fmt"
	"strings"
)

// MissingGroupError represents an export missing a record group the CV cannot
// be generated without.
type MissingGroupError struct {
	Group string
}

func (e *MissingGroupError) Error() string {
	return fmt.Sprintf("required record group %s is missing or empty", e.Group)
}

// UncategorizedSkillsError reports every skill that matched no taxonomy
// category, in one error, so the curator can fix the whole batch in one pass.
type UncategorizedSkillsError struct {
	Skills []string
}

func (e *UncategorizedSkillsError) Error() string {
	return fmt.Sprintf("uncategorized skills: %s", strings.Join(e.Skills, ", "))
}

// RecordError represents a record that failed field validation.
type RecordError struct {
	Group string
	Cause error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid %s record: %v", e.Group, e.Cause)
}

func (e *RecordError) Unwrap() error {
	return e.Cause
}
