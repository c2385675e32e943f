package dump

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

func rawKey(keyname string, data ...byte) []byte {
	return NewKey(keyname, data).Raw()
}

func TestNewGroupsByKeyname(t *testing.T) {
	d, err := New([]RawRecord{
		{Key: rawKey("name", 0x01), Value: []byte{0xaa}},
		{Key: rawKey("tx", 0x02), Value: []byte{0xbb}},
		{Key: rawKey("name", 0x03), Value: []byte{0xcc}},
	})
	require.NoError(t, err)

	records, err := d.RecordsForKeyname("name")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []byte{0x01}, records[0].Key.Data)
	assert.Equal(t, []byte{0x03}, records[1].Key.Data)

	assert.Equal(t, []string{"name", "tx"}, d.Keynames())
	assert.Equal(t, 3, d.RecordCount())
}

func TestRecordsForUnknownKeyname(t *testing.T) {
	d, err := New([]RawRecord{
		{Key: rawKey("name", 0x01), Value: []byte{0xaa}},
	})
	require.NoError(t, err)

	_, err = d.RecordsForKeyname("purpose")
	var missing *MissingRecordError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "purpose", missing.Key)
}

func TestRecordForKeyname(t *testing.T) {
	d, err := New([]RawRecord{
		{Key: rawKey("version"), Value: []byte{0x01}},
		{Key: rawKey("tx", 0x01), Value: nil},
		{Key: rawKey("tx", 0x02), Value: nil},
	})
	require.NoError(t, err)

	record, err := d.RecordForKeyname("version")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, record.Value)

	_, err = d.RecordForKeyname("tx")
	var count *UnexpectedRecordCountError
	require.True(t, errors.As(err, &count))
	assert.Equal(t, 2, count.Count)

	_, err = d.RecordForKeyname("minversion")
	require.True(t, errors.As(err, &count))
	assert.Equal(t, 0, count.Count)
}

func TestValueForKey(t *testing.T) {
	d, err := New([]RawRecord{
		{Key: rawKey("keymeta", 0xde, 0xad), Value: []byte{0x2a}},
	})
	require.NoError(t, err)

	value, err := d.ValueForKey(NewKey("keymeta", []byte{0xde, 0xad}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2a}, value)

	_, err = d.ValueForKey(NewKey("keymeta", []byte{0xbe, 0xef}))
	var missing *MissingRecordError
	assert.True(t, errors.As(err, &missing))
}

func TestNonUniqueKeys(t *testing.T) {
	_, err := New([]RawRecord{
		{Key: rawKey("name", 0x01), Value: []byte{0xaa}},
		{Key: rawKey("name", 0x01), Value: []byte{0xbb}},
	})
	var inconsistency *InconsistencyError
	require.True(t, errors.As(err, &inconsistency))
	assert.True(t, errors.Is(err, ErrNonUniqueKeys))
}

func TestClaimedTracking(t *testing.T) {
	d, err := New([]RawRecord{
		{Key: rawKey("name", 0x02), Value: nil},
		{Key: rawKey("name", 0x01), Value: nil},
		{Key: rawKey("watchs", 0x03), Value: nil},
	})
	require.NoError(t, err)

	d.MarkClaimed(NewKey("name", []byte{0x01}))
	d.MarkClaimed(NewKey("name", []byte{0x01})) // double-claim is a no-op

	unclaimed := d.UnclaimedKeys()
	require.Len(t, unclaimed, 2)
	// Sorted by raw key bytes: "name" < "watchs".
	assert.Equal(t, "name", unclaimed[0].Keyname)
	assert.Equal(t, []byte{0x02}, unclaimed[0].Data)
	assert.Equal(t, "watchs", unclaimed[1].Keyname)
}

func TestKeyRawRoundTrip(t *testing.T) {
	key := NewKey("sapzkeymeta", []byte{0x00, 0x01, 0x02})
	parsed, err := parseKey(key.Raw())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestParseKeyRejectsTruncatedKeyname(t *testing.T) {
	buf := parser.AppendCompactSize(nil, 10)
	buf = append(buf, "shor"...)
	_, err := parseKey(buf)
	require.Error(t, err)
	var underflow *parser.BufferUnderflowError
	assert.True(t, errors.As(err, &underflow))
}

func TestReadDump(t *testing.T) {
	nameKey := hex.EncodeToString(rawKey("name", 0x01))
	versionKey := hex.EncodeToString(rawKey("version"))
	text := strings.Join([]string{
		"VERSION=3",
		"format=bytevalue",
		"type=btree",
		"db_pagesize=4096",
		"HEADER=END",
		" " + nameKey,
		" aabb",
		" " + versionKey,
		" 37c41e00",
		"DATA=END",
		"",
	}, "\n")

	d, err := ReadDump(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, 2, d.RecordCount())

	record, err := d.RecordForKeyname("name")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb}, record.Value)
}

func TestReadDumpUnmatchedKeyValue(t *testing.T) {
	text := strings.Join([]string{
		"HEADER=END",
		" " + hex.EncodeToString(rawKey("name", 0x01)),
		"DATA=END",
		"",
	}, "\n")

	_, err := ReadDump(strings.NewReader(text))
	assert.True(t, errors.Is(err, ErrUnmatchedKeyValue))
}
