package ingestion

import "fmt"

// BundleError represents a failure to open or read an export bundle
type BundleError struct {
	Path    string
	Message string
	Cause   error
}

func (e *BundleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export bundle %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("export bundle %s: %s", e.Path, e.Message)
}

func (e *BundleError) Unwrap() error {
	return e.Cause
}
