// Package dump models the raw key/value records of a Berkeley DB zcashd
// wallet dump: it splits every raw key into its keyname (the category token
// the key starts with) and category-specific payload, indexes records by
// keyname and keeps track of which records the reconstruction pass has
// claimed.
package dump

import (
	"bytes"
	"encoding/hex"
	"sort"

	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

// RawRecord is a single key/value pair exactly as extracted from the
// Berkeley DB container.
type RawRecord struct {
	Key   []byte
	Value []byte
}

// Key identifies a record inside the dump: the keyname token the raw key
// starts with, plus the remaining key bytes (the category-specific key
// payload). Two records are the same record iff their raw key bytes match.
type Key struct {
	Keyname string
	Data    []byte
}

// NewKey builds a key from a keyname and key payload. Used to derive the
// co-keyed metadata record of a primary record, e.g. NewKey("keymeta",
// keyRecord.Key.Data).
func NewKey(keyname string, data []byte) Key {
	return Key{Keyname: keyname, Data: data}
}

// Raw returns the serialized form of the key as stored in the dump: the
// CompactSize-prefixed keyname token followed by the key payload.
func (k Key) Raw() []byte {
	buf := parser.AppendCompactSize(nil, uint64(len(k.Keyname)))
	buf = append(buf, k.Keyname...)
	return append(buf, k.Data...)
}

func (k Key) String() string {
	if len(k.Data) == 0 {
		return k.Keyname
	}
	return k.Keyname + "(" + hex.EncodeToString(k.Data) + ")"
}

// identity is the map key used for claimed-set bookkeeping.
func (k Key) identity() string {
	return string(k.Raw())
}

// Record pairs a parsed key with its raw value bytes.
type Record struct {
	Key   Key
	Value []byte
}

func parseKey(raw []byte) (Key, error) {
	p := parser.NewParser(raw)
	keyname, err := parser.ParseString(p)
	if err != nil {
		return Key{}, parser.Wrap(err, "keyname")
	}
	data, err := parser.ParseBytes(p, p.Remaining())
	if err != nil {
		return Key{}, err
	}
	return Key{Keyname: keyname, Data: data}, nil
}

// sortKeys orders keys by their raw bytes ascending. Reconstruction relies
// on this for deterministic output independent of the enumeration order of
// the external source.
func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i].Raw(), keys[j].Raw()) < 0
	})
}
