package parser

import "encoding/binary"

// CompactSize prefix bytes for the 2, 4 and 8 byte wide encodings.
const (
	compactSizePrefix16 = 0xfd
	compactSizePrefix32 = 0xfe
	compactSizePrefix64 = 0xff
)

// ParseCompactSize decodes a canonically encoded variable-length unsigned
// integer: a single byte below 0xfd is the value itself, otherwise a prefix
// byte 0xfd/0xfe/0xff is followed by a 2/4/8 byte little-endian value. A
// value encoded with a wider prefix than its minimal form requires fails
// with a *InvalidCompactSizeError.
func ParseCompactSize(p *Parser) (uint64, error) {
	prefix, err := p.ReadByte()
	if err != nil {
		return 0, err
	}
	switch prefix {
	case compactSizePrefix16:
		buf, err := p.Next(2)
		if err != nil {
			return 0, err
		}
		value := uint64(binary.LittleEndian.Uint16(buf))
		if value < 0xfd {
			return 0, &InvalidCompactSizeError{Prefix: prefix, Value: value}
		}
		return value, nil
	case compactSizePrefix32:
		buf, err := p.Next(4)
		if err != nil {
			return 0, err
		}
		value := uint64(binary.LittleEndian.Uint32(buf))
		if value <= 0xffff {
			return 0, &InvalidCompactSizeError{Prefix: prefix, Value: value}
		}
		return value, nil
	case compactSizePrefix64:
		buf, err := p.Next(8)
		if err != nil {
			return 0, err
		}
		value := binary.LittleEndian.Uint64(buf)
		if value <= 0xffffffff {
			return 0, &InvalidCompactSizeError{Prefix: prefix, Value: value}
		}
		return value, nil
	default:
		return uint64(prefix), nil
	}
}

// AppendCompactSize appends the minimal canonical encoding of v to dst and
// returns the extended slice.
func AppendCompactSize(dst []byte, v uint64) []byte {
	switch {
	case v < compactSizePrefix16:
		return append(dst, byte(v))
	case v <= 0xffff:
		dst = append(dst, compactSizePrefix16)
		return binary.LittleEndian.AppendUint16(dst, uint16(v))
	case v <= 0xffffffff:
		dst = append(dst, compactSizePrefix32)
		return binary.LittleEndian.AppendUint32(dst, uint32(v))
	default:
		dst = append(dst, compactSizePrefix64)
		return binary.LittleEndian.AppendUint64(dst, v)
	}
}
