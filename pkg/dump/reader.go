package dump

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	headerEndMarker = "HEADER=END"
	dataEndMarker   = "DATA=END"
)

// ReadDump reads the text output of Berkeley DB's `db_dump` utility: a
// block of header lines terminated by HEADER=END, then alternating
// space-indented hex-encoded key and value lines terminated by DATA=END.
// The resulting records keep the order they appear in the dump.
func ReadDump(r io.Reader) (*Dump, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	inHeader := true
	var pendingKey []byte
	haveKey := false
	var records []RawRecord

	for scanner.Scan() {
		line := scanner.Text()
		if inHeader {
			if line == headerEndMarker {
				inHeader = false
			}
			continue
		}
		if line == dataEndMarker {
			break
		}
		raw, err := hex.DecodeString(strings.TrimLeft(line, " \t"))
		if err != nil {
			return nil, fmt.Errorf("malformed dump line %q: %w", line, err)
		}
		if !haveKey {
			pendingKey = raw
			haveKey = true
			continue
		}
		records = append(records, RawRecord{Key: pendingKey, Value: raw})
		haveKey = false
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if haveKey {
		return nil, &InconsistencyError{Reason: ErrUnmatchedKeyValue}
	}
	return New(records)
}

// ReadDumpFile reads a `db_dump` text file from disk.
func ReadDumpFile(path string) (*Dump, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadDump(file)
}
