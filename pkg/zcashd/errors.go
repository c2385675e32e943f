package zcashd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidKeypair is returned when the hash embedded in a secret-key
	// record does not match the hash of the pubkey/privkey material.
	ErrInvalidKeypair = errors.New("pubkey and privkey hash do not match")

	// ErrNotZcashNetworkInfo is returned when the networkinfo record does
	// not identify a Zcash wallet.
	ErrNotZcashNetworkInfo = errors.New("network info does not identify a Zcash wallet")
)

// InvalidLengthError is returned when a fixed or enumerated-length payload
// matches none of its accepted lengths.
type InvalidLengthError struct {
	Kind     string
	Expected []int
	Actual   int
}

func (e *InvalidLengthError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, v := range e.Expected {
		expected[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf(
		"invalid length for %s: expected %s, got %d",
		e.Kind, strings.Join(expected, ", "), e.Actual,
	)
}

// InvalidAmountError is returned when a numeric amount falls outside the
// range the format accepts.
type InvalidAmountError struct {
	Kind  string
	Value int64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid %s amount: %d", e.Kind, e.Value)
}

// InvalidBitPatternError is returned when a value's bit pattern is outside
// the accepted set for its type.
type InvalidBitPatternError struct {
	Kind string
}

func (e *InvalidBitPatternError) Error() string {
	return fmt.Sprintf("invalid bit pattern for %s", e.Kind)
}

// DuplicateRecordError is returned when a key that must be unique within
// its category appears twice.
type DuplicateRecordError struct {
	Kind string
	Key  string
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("duplicate %s: %s", e.Kind, e.Key)
}

// MismatchedRecordsError is returned when two categories that must pair
// one-to-one hold differing record counts.
type MismatchedRecordsError struct {
	Kind string
}

func (e *MismatchedRecordsError) Error() string {
	return fmt.Sprintf("mismatched %s records", e.Kind)
}

// UnexpectedValueError is returned when a record's value is constrained to
// a fixed constant and holds something else.
type UnexpectedValueError struct {
	Kind  string
	Value uint32
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("unexpected %s value: 0x%08x", e.Kind, e.Value)
}
