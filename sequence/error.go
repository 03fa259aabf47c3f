package sequence

import "fmt"

// FormatError reports a structural problem that prevents a document
// from being adapted: undecodable JSON, an unrecognized shape, no
// steps, or no usable start pose. Token-level problems are never
// format errors; they degrade at sample time instead
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "sequence format: " + e.Reason
}

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}
