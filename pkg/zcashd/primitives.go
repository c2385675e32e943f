// Package zcashd implements the typed record payloads of the zcashd wallet
// serialization format and the category-by-category reconstruction of a
// wallet from a raw Berkeley DB dump.
package zcashd

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

// TxID is the 32-byte transaction identifier, kept in internal byte order;
// its String form is the reversed-hex convention wallets display.
type TxID = chainhash.Hash

// ClientVersion is the zcashd build number stored in the version and
// minversion records.
type ClientVersion int32

func (v *ClientVersion) Parse(p *parser.Parser) error {
	n, err := parser.ParseInt32(p)
	if err != nil {
		return err
	}
	*v = ClientVersion(n)
	return nil
}

// SeedFingerprint identifies an HD seed (BIP-32 master fingerprint style,
// 32 bytes in this format).
type SeedFingerprint [32]byte

func (f *SeedFingerprint) Parse(p *parser.Parser) error {
	return parseBlob(p, f[:])
}

func (f SeedFingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// UfvkFingerprint is the fixed-width identifier cross-referencing unified
// full viewing keys with unified account and address metadata.
type UfvkFingerprint [32]byte

func (f *UfvkFingerprint) Parse(p *parser.Parser) error {
	return parseBlob(p, f[:])
}

func (f UfvkFingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// parseBlob fills dst from the cursor.
func parseBlob(p *parser.Parser, dst []byte) error {
	buf, err := p.Next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, buf)
	return nil
}

// parseHash reads a 32-byte hash in internal byte order.
func parseHash(p *parser.Parser) (chainhash.Hash, error) {
	var h chainhash.Hash
	err := parseBlob(p, h[:])
	return h, err
}

// parseHashVector reads a CompactSize-prefixed run of 32-byte hashes.
func parseHashVector(p *parser.Parser) ([]chainhash.Hash, error) {
	count, err := parser.ParseCompactSize(p)
	if err != nil {
		return nil, err
	}
	hashes := make([]chainhash.Hash, 0, minCap(count))
	for i := uint64(0); i < count; i++ {
		h, err := parseHash(p)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}

// minCap caps pre-allocation for attacker-controlled counts; the cursor's
// bounds checks stop oversized vectors soon after.
func minCap(count uint64) int {
	const limit = 1024
	if count > limit {
		return limit
	}
	return int(count)
}
