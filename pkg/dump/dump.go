package dump

import "sort"

// Dump owns the raw records of a wallet dump, grouped by keyname with
// insertion order preserved, and tracks which records the reconstruction
// pass has claimed so far. A single pass owns the dump for its lifetime;
// concurrent passes over the same dump are not supported.
type Dump struct {
	records  map[string][]Record
	byRawKey map[string]Record
	pending  map[string]Key
}

// New indexes the given records by keyname. It fails with an
// *InconsistencyError if a raw key appears twice or a key does not start
// with a well-formed keyname token.
func New(rawRecords []RawRecord) (*Dump, error) {
	d := &Dump{
		records:  make(map[string][]Record),
		byRawKey: make(map[string]Record, len(rawRecords)),
		pending:  make(map[string]Key, len(rawRecords)),
	}
	for _, raw := range rawRecords {
		key, err := parseKey(raw.Key)
		if err != nil {
			return nil, err
		}
		identity := key.identity()
		if _, ok := d.byRawKey[identity]; ok {
			return nil, &InconsistencyError{Reason: ErrNonUniqueKeys}
		}
		record := Record{Key: key, Value: raw.Value}
		d.records[key.Keyname] = append(d.records[key.Keyname], record)
		d.byRawKey[identity] = record
		d.pending[identity] = key
	}
	return d, nil
}

// RecordsForKeyname returns all records for the keyname in insertion
// order. A keyname the dump has never seen is a lookup error, distinct
// from a keyname that is present but empty.
func (d *Dump) RecordsForKeyname(keyname string) ([]Record, error) {
	records, ok := d.records[keyname]
	if !ok {
		return nil, &MissingRecordError{Kind: "keyname", Key: keyname}
	}
	return records, nil
}

// RecordForKeyname returns the one record for the keyname, failing with an
// *UnexpectedRecordCountError if there are zero or more than one.
func (d *Dump) RecordForKeyname(keyname string) (Record, error) {
	records := d.records[keyname]
	if len(records) != 1 {
		return Record{}, &UnexpectedRecordCountError{
			Keyname: keyname,
			Count:   len(records),
		}
	}
	return records[0], nil
}

// ValueForKey returns the value bytes of the record with the exact given
// key, typically used to fetch the metadata record co-keyed with a primary
// key record.
func (d *Dump) ValueForKey(key Key) ([]byte, error) {
	record, ok := d.byRawKey[key.identity()]
	if !ok {
		return nil, &MissingRecordError{Kind: "record", Key: key.String()}
	}
	return record.Value, nil
}

// HasKeysForKeyname reports whether the dump holds any record for the
// keyname. Optional categories are gated on this before lookup.
func (d *Dump) HasKeysForKeyname(keyname string) bool {
	return len(d.records[keyname]) > 0
}

// HasValueForKeyname reports whether the dump holds exactly one record for
// the keyname, the precondition of a scalar lookup.
func (d *Dump) HasValueForKeyname(keyname string) bool {
	return len(d.records[keyname]) == 1
}

// Keynames returns every keyname present in the dump, sorted.
func (d *Dump) Keynames() []string {
	names := make([]string, 0, len(d.records))
	for name := range d.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecordCount returns the total number of records in the dump.
func (d *Dump) RecordCount() int {
	return len(d.byRawKey)
}

// MarkClaimed records that the reconstruction pass has associated the
// record with a decoded entity. Claiming the same record twice is a no-op.
func (d *Dump) MarkClaimed(key Key) {
	delete(d.pending, key.identity())
}

// UnclaimedKeys returns the identities never claimed during the pass,
// sorted by raw key bytes. A non-empty result signals unknown or
// unsupported record categories, not a failure.
func (d *Dump) UnclaimedKeys() []Key {
	keys := make([]Key, 0, len(d.pending))
	for _, key := range d.pending {
		keys = append(keys, key)
	}
	sortKeys(keys)
	return keys
}
