package parser

import "fmt"

// BufferUnderflowError is returned when a read asks for more bytes than
// remain in the buffer.
type BufferUnderflowError struct {
	Offset    int
	Needed    int
	Remaining int
}

func (e *BufferUnderflowError) Error() string {
	return fmt.Sprintf(
		"buffer underflow at offset %d: needed %d bytes but only %d remaining",
		e.Offset, e.Needed, e.Remaining,
	)
}

// BufferNotConsumedError is returned by standalone-buffer decodes that
// succeeded without reading the whole buffer.
type BufferNotConsumedError struct {
	Remaining int
}

func (e *BufferNotConsumedError) Error() string {
	return fmt.Sprintf("buffer not fully consumed: %d bytes remain", e.Remaining)
}

// InvalidCompactSizeError is returned when a CompactSize value is encoded
// with a wider prefix than its minimal canonical form requires.
type InvalidCompactSizeError struct {
	Prefix byte
	Value  uint64
}

func (e *InvalidCompactSizeError) Error() string {
	return fmt.Sprintf("invalid CompactSize prefix %#04x with value %d", e.Prefix, e.Value)
}

// InvalidBooleanError is returned when a serialized boolean is neither 0
// nor 1.
type InvalidBooleanError struct {
	Value byte
}

func (e *InvalidBooleanError) Error() string {
	return fmt.Sprintf("invalid boolean value: %d", e.Value)
}

// InvalidOptionalDiscriminantError is returned when the presence byte of an
// optional value is neither 0x00 nor 0x01.
type InvalidOptionalDiscriminantError struct {
	Value byte
}

func (e *InvalidOptionalDiscriminantError) Error() string {
	return fmt.Sprintf("invalid optional discriminant: 0x%02x", e.Value)
}
