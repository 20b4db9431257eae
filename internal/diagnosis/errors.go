package diagnosis

import "fmt"

// ClassificationUnavailableError indicates the external image capability
// failed or timed out. The evaluation is aborted with no partial result:
// falling back to the Siriraj path would silently change the evidentiary
// basis of a clinical decision, so the engine never does it.
type ClassificationUnavailableError struct {
	Err error
}

func (e *ClassificationUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("image classification unavailable: %v", e.Err)
	}
	return "image classification unavailable"
}

func (e *ClassificationUnavailableError) Unwrap() error { return e.Err }
