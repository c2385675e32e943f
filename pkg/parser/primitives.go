package parser

import (
	"encoding/binary"
	"math"
)

// ParseUint8 decodes a single unsigned byte.
func ParseUint8(p *Parser) (uint8, error) {
	return p.ReadByte()
}

// ParseUint16 decodes a little-endian 16-bit unsigned integer.
func ParseUint16(p *Parser) (uint16, error) {
	buf, err := p.Next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// ParseUint32 decodes a little-endian 32-bit unsigned integer.
func ParseUint32(p *Parser) (uint32, error) {
	buf, err := p.Next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ParseUint64 decodes a little-endian 64-bit unsigned integer.
func ParseUint64(p *Parser) (uint64, error) {
	buf, err := p.Next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

// ParseInt32 decodes a little-endian 32-bit signed integer.
func ParseInt32(p *Parser) (int32, error) {
	v, err := ParseUint32(p)
	return int32(v), err
}

// ParseInt64 decodes a little-endian 64-bit signed integer.
func ParseInt64(p *Parser) (int64, error) {
	v, err := ParseUint64(p)
	return int64(v), err
}

// ParseBool decodes a boolean serialized as a single byte that must be
// exactly 0 or 1.
func ParseBool(p *Parser) (bool, error) {
	b, err := p.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &InvalidBooleanError{Value: b}
	}
}

// ParseBytes decodes a fixed-length run of n bytes into a fresh slice that
// does not alias the parser's buffer.
func ParseBytes(p *Parser, n int) ([]byte, error) {
	buf, err := p.Next(n)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), buf...), nil
}

// ParseData decodes a CompactSize-prefixed byte string.
func ParseData(p *Parser) ([]byte, error) {
	length, err := ParseCompactSize(p)
	if err != nil {
		return nil, err
	}
	if err := checkLength(p, length); err != nil {
		return nil, err
	}
	return ParseBytes(p, int(length))
}

// ParseString decodes a CompactSize-prefixed UTF-8 string.
func ParseString(p *Parser) (string, error) {
	length, err := ParseCompactSize(p)
	if err != nil {
		return "", err
	}
	if err := checkLength(p, length); err != nil {
		return "", err
	}
	buf, err := p.Next(int(length))
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// checkLength rejects a CompactSize length prefix larger than the bytes
// left in the buffer. The comparison runs on the uint64 value: a length
// past 2^63 narrowed to int would wrap negative and slip past the
// cursor's bounds check.
func checkLength(p *Parser, length uint64) error {
	if length > uint64(p.Remaining()) {
		needed := math.MaxInt
		if length <= math.MaxInt {
			needed = int(length)
		}
		return &BufferUnderflowError{
			Offset:    p.Offset(),
			Needed:    needed,
			Remaining: p.Remaining(),
		}
	}
	return nil
}

// ParseOptionalDiscriminant decodes the presence byte of an optional value:
// 0x00 means absent, 0x01 means a value follows, anything else fails with a
// *InvalidOptionalDiscriminantError.
func ParseOptionalDiscriminant(p *Parser) (bool, error) {
	b, err := p.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, &InvalidOptionalDiscriminantError{Value: b}
	}
}
