package stress

import "fmt"

// MissingFieldError reports a required field absent from a nested record.
type MissingFieldError struct {
	TowerID string // empty when tower_id itself is missing
	Field   string
}

func (e *MissingFieldError) Error() string {
	if e.TowerID == "" {
		return fmt.Sprintf("missing required field %q", e.Field)
	}
	return fmt.Sprintf("tower %s: missing required field %q", e.TowerID, e.Field)
}

// InvalidValueError reports a field that is present but malformed or outside
// a physically sensible range.
type InvalidValueError struct {
	TowerID string
	Field   string
	Reason  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("tower %s: invalid value for %q: %s", e.TowerID, e.Field, e.Reason)
}

// BatchError wraps the first record failure in a batch with its position.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
