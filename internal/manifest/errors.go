package manifest

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a suite has no recorded fixture.
type NotFoundError struct {
	Suite string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no recorded fixture for suite %q", e.Suite)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// DriftError reports that fixture bytes no longer match the recorded
// digest.
type DriftError struct {
	Suite    string
	Recorded string
	Computed string
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("fixture drift for suite %q: recorded sha256 %s, computed %s",
		e.Suite, e.Recorded, e.Computed)
}

// IsDrift reports whether err is a DriftError.
func IsDrift(err error) bool {
	var d *DriftError
	return errors.As(err, &d)
}
