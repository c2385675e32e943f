// Package parser implements the byte-level decoding framework used to read
// zcashd wallet records: a bounds-checked sequential cursor, the canonical
// CompactSize integer codec and decoders for the primitive values the wallet
// serialization format is built from.
package parser

// Parser is a bounds-checked sequential reader over an in-memory buffer.
// Every read advances the position; a read past the end of the buffer fails
// with a *BufferUnderflowError and leaves the position untouched.
type Parser struct {
	data   []byte
	offset int
}

// NewParser returns a parser positioned at the start of data. The parser
// does not copy the buffer, callers must not mutate it while decoding.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Next returns the next n bytes and advances the position. The returned
// slice aliases the underlying buffer.
func (p *Parser) Next(n int) ([]byte, error) {
	if remaining := len(p.data) - p.offset; n < 0 || remaining < n {
		return nil, &BufferUnderflowError{
			Offset:    p.offset,
			Needed:    n,
			Remaining: remaining,
		}
	}
	buf := p.data[p.offset : p.offset+n]
	p.offset += n
	return buf, nil
}

// ReadByte returns the next single byte.
func (p *Parser) ReadByte() (byte, error) {
	buf, err := p.Next(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Offset returns the current position from the start of the buffer.
func (p *Parser) Offset() int {
	return p.offset
}

// Remaining returns the number of bytes left to read.
func (p *Parser) Remaining() int {
	return len(p.data) - p.offset
}

// CheckFinished fails with a *BufferNotConsumedError if the parser has not
// reached the end of its buffer. Used to distinguish "decoded successfully"
// from "decoded successfully but left trailing bytes behind".
func (p *Parser) CheckFinished() error {
	if remaining := p.Remaining(); remaining > 0 {
		return &BufferNotConsumedError{Remaining: remaining}
	}
	return nil
}
