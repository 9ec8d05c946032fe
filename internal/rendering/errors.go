// Package rendering provides the concrete output backends for the layout
// engine: a paged HTML canvas, a Chromium-based PDF printer, and a
// single-flow HTML template renderer.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing an HTML template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// BrowserError represents a failure driving the headless browser during
// PDF printing
type BrowserError struct {
	Message string
	Cause   error
}

func (e *BrowserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("browser error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("browser error: %s", e.Message)
}

func (e *BrowserError) Unwrap() error {
	return e.Cause
}
