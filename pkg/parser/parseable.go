package parser

import "fmt"

// Parseable is implemented by every typed record payload. Parse decodes the
// value in place from the cursor; composition is structural, a struct
// decodes its fields in declared order from the same cursor and the first
// field failure fails the whole decode.
//
// Payloads whose layout depends on a value known only to the enclosing
// structure (a byte length, usually) take that value as an ordinary
// function argument instead, in the manner of ParseBytes.
type Parseable interface {
	Parse(p *Parser) error
}

// FromBytes decodes v from a standalone buffer and requires the buffer to
// be fully consumed; trailing bytes fail with a *BufferNotConsumedError.
func FromBytes(buf []byte, v Parseable) error {
	p := NewParser(buf)
	if err := v.Parse(p); err != nil {
		return err
	}
	return p.CheckFinished()
}

// Wrap annotates a decode failure with a description of what was being
// decoded. The original error is retained as the wrapped cause so that
// errors.Is and errors.As still reach the innermost failure. A nil err is
// passed through.
func Wrap(err error, what string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("Parsing %s: %w", what, err)
}

// Parse decodes v from the cursor, wrapping any failure with what was being
// decoded.
func Parse(p *Parser, v Parseable, what string) error {
	return Wrap(v.Parse(p), what)
}

// ParseFromBytes decodes v from a standalone buffer, wrapping any failure
// (including trailing unconsumed bytes) with what was being decoded.
func ParseFromBytes(buf []byte, v Parseable, what string) error {
	return Wrap(FromBytes(buf, v), what)
}
