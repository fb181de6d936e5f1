package league

import (
	"errors"
	"fmt"
)

// ErrIdentityMismatch is returned when an update record disagrees with a
// game's write-once identity fields (id, week, home, away). It indicates the
// caller matched the wrong game and must never be silently corrected.
var ErrIdentityMismatch = errors.New("game identity mismatch")

// NotFoundError reports a failed reference lookup.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
