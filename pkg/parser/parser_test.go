package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	p := NewParser([]byte{0x01, 0x02, 0x03, 0x04})

	buf, err := p.Next(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, buf)
	assert.Equal(t, 3, p.Offset())
	assert.Equal(t, 1, p.Remaining())

	err = p.CheckFinished()
	require.Error(t, err)
	var notConsumed *BufferNotConsumedError
	require.True(t, errors.As(err, &notConsumed))
	assert.Equal(t, 1, notConsumed.Remaining)

	_, err = p.Next(1)
	require.NoError(t, err)
	assert.NoError(t, p.CheckFinished())
}

func TestNextUnderflow(t *testing.T) {
	p := NewParser([]byte{0x01, 0x02, 0x03})
	_, err := p.Next(2)
	require.NoError(t, err)

	_, err = p.Next(5)
	require.Error(t, err)
	var underflow *BufferUnderflowError
	require.True(t, errors.As(err, &underflow))
	assert.Equal(t, 2, underflow.Offset)
	assert.Equal(t, 5, underflow.Needed)
	assert.Equal(t, 1, underflow.Remaining)

	// A failed read must not advance the position.
	assert.Equal(t, 2, p.Offset())
}

func TestCompactSizeRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 0xfc,
		0xfd, 0x1234, 0xffff,
		0x10000, 0xffffffff,
		0x100000000, 0xffffffffffffffff,
	}
	for _, v := range values {
		buf := AppendCompactSize(nil, v)
		p := NewParser(buf)
		decoded, err := ParseCompactSize(p)
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, decoded)
		assert.NoError(t, p.CheckFinished(), "value %d", v)
	}
}

func TestCompactSizeMinimalWidth(t *testing.T) {
	tests := []struct {
		value uint64
		size  int
	}{
		{0xfc, 1},
		{0xfd, 3},
		{0xffff, 3},
		{0x10000, 5},
		{0xffffffff, 5},
		{0x100000000, 9},
	}
	for _, tt := range tests {
		assert.Len(t, AppendCompactSize(nil, tt.value), tt.size, "value %d", tt.value)
	}
}

func TestCompactSizeRejectsNonCanonical(t *testing.T) {
	tests := []struct {
		name   string
		buf    []byte
		prefix byte
		value  uint64
	}{
		{"16-bit encoding of 0xfc", []byte{0xfd, 0xfc, 0x00}, 0xfd, 0xfc},
		{"16-bit encoding of 0", []byte{0xfd, 0x00, 0x00}, 0xfd, 0},
		{"32-bit encoding of 0xffff", []byte{0xfe, 0xff, 0xff, 0x00, 0x00}, 0xfe, 0xffff},
		{"64-bit encoding of 0xffffffff", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00}, 0xff, 0xffffffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCompactSize(NewParser(tt.buf))
			var invalid *InvalidCompactSizeError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.prefix, invalid.Prefix)
			assert.Equal(t, tt.value, invalid.Value)
		})
	}
}

func TestParseBool(t *testing.T) {
	v, err := ParseBool(NewParser([]byte{0x00}))
	require.NoError(t, err)
	assert.False(t, v)

	v, err = ParseBool(NewParser([]byte{0x01}))
	require.NoError(t, err)
	assert.True(t, v)

	_, err = ParseBool(NewParser([]byte{0x02}))
	var invalid *InvalidBooleanError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, byte(0x02), invalid.Value)
}

func TestParseOptionalDiscriminant(t *testing.T) {
	present, err := ParseOptionalDiscriminant(NewParser([]byte{0x01}))
	require.NoError(t, err)
	assert.True(t, present)

	present, err = ParseOptionalDiscriminant(NewParser([]byte{0x00}))
	require.NoError(t, err)
	assert.False(t, present)

	_, err = ParseOptionalDiscriminant(NewParser([]byte{0x80}))
	var invalid *InvalidOptionalDiscriminantError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, byte(0x80), invalid.Value)
}

func TestParseString(t *testing.T) {
	buf := AppendCompactSize(nil, 5)
	buf = append(buf, []byte("hello")...)
	s, err := ParseString(NewParser(buf))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestLengthPrefixExceedingBuffer(t *testing.T) {
	tests := []struct {
		name      string
		buf       []byte
		remaining int
	}{
		{
			// Canonical 64-bit length past 2^63; naive narrowing to int
			// would turn it negative.
			"length past int range",
			[]byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80},
			0,
		},
		{
			"length beyond remaining bytes",
			append(AppendCompactSize(nil, 1<<40), 0x01),
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(NewParser(tt.buf))
			var underflow *BufferUnderflowError
			require.True(t, errors.As(err, &underflow))
			assert.Equal(t, tt.remaining, underflow.Remaining)

			_, err = ParseData(NewParser(tt.buf))
			underflow = nil
			require.True(t, errors.As(err, &underflow))
			assert.Equal(t, tt.remaining, underflow.Remaining)
		})
	}
}

func TestNextRejectsNegativeCount(t *testing.T) {
	p := NewParser([]byte{0x01, 0x02})
	_, err := p.Next(-1)

	var underflow *BufferUnderflowError
	require.True(t, errors.As(err, &underflow))
	assert.Equal(t, 0, p.Offset())
}

func TestParseDataCopies(t *testing.T) {
	buf := append(AppendCompactSize(nil, 3), 0xaa, 0xbb, 0xcc)
	data, err := ParseData(NewParser(buf))
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc}, data)

	buf[1] = 0x00
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc}, data)
}

func TestParseIntegers(t *testing.T) {
	p := NewParser([]byte{
		0x2a,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	})

	u8, err := ParseUint8(p)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2a), u8)

	u16, err := ParseUint16(p)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	u32, err := ParseUint32(p)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), u32)

	i64, err := ParseInt64(p)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i64)
}

type failingPayload struct{}

func (f *failingPayload) Parse(p *Parser) error {
	_, err := p.Next(64)
	return Wrap(err, "inner field")
}

func TestWrapPreservesCause(t *testing.T) {
	err := ParseFromBytes([]byte{0x01}, &failingPayload{}, "outer payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parsing outer payload")
	assert.Contains(t, err.Error(), "Parsing inner field")

	var underflow *BufferUnderflowError
	require.True(t, errors.As(err, &underflow))
	assert.Equal(t, 64, underflow.Needed)
	assert.Equal(t, 1, underflow.Remaining)
}

type byteTail struct{ tail []byte }

func (b *byteTail) Parse(p *Parser) error {
	buf, err := ParseBytes(p, 1)
	b.tail = buf
	return err
}

func TestFromBytesRequiresFullConsumption(t *testing.T) {
	err := FromBytes([]byte{0x01, 0x02}, &byteTail{})
	var notConsumed *BufferNotConsumedError
	require.True(t, errors.As(err, &notConsumed))
	assert.Equal(t, 1, notConsumed.Remaining)

	assert.NoError(t, FromBytes([]byte{0x01}, &byteTail{}))
}
