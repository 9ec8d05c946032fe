package parsing

import "fmt"

// CSVError represents a failure to parse a CSV record group
type CSVError struct {
	Group   string
	Message string
	Cause   error
}

func (e *CSVError) Error() string {
	if e.Group != "" {
		if e.Cause != nil {
			return fmt.Sprintf("CSV error in %s: %s: %v", e.Group, e.Message, e.Cause)
		}
		return fmt.Sprintf("CSV error in %s: %s", e.Group, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("CSV error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("CSV error: %s", e.Message)
}

func (e *CSVError) Unwrap() error {
	return e.Cause
}

// RowError represents a malformed data row. Row is the 1-based line position
// in the source file (the header is row 1).
type RowError struct {
	Group   string
	Row     int
	Message string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d of %s: %s", e.Row, e.Group, e.Message)
}
