package dump

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmatchedKeyValue signals a dump with a key line that has no
	// corresponding value line.
	ErrUnmatchedKeyValue = errors.New("found key without corresponding value")
	// ErrNonUniqueKeys signals a dump containing the same raw key twice.
	ErrNonUniqueKeys = errors.New("non-unique keys detected")
)

// InconsistencyError reports a structural problem in the raw record set
// itself, as opposed to a malformed record payload.
type InconsistencyError struct {
	Reason error
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("inconsistent Berkeley DB dump: %v", e.Reason)
}

func (e *InconsistencyError) Unwrap() error {
	return e.Reason
}

// MissingRecordError is returned when a lookup names a keyname or record
// the dump does not contain.
type MissingRecordError struct {
	Kind string
	Key  string
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("missing %s: %s", e.Kind, e.Key)
}

// UnexpectedRecordCountError is returned by single-record lookups that
// found zero or more than one record for the keyname.
type UnexpectedRecordCountError struct {
	Keyname string
	Count   int
}

func (e *UnexpectedRecordCountError) Error() string {
	return fmt.Sprintf(
		"expected exactly one record for %s, found %d", e.Keyname, e.Count,
	)
}
