package zcashd

import (
	"encoding/hex"

	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

// SproutPaymentAddress is the locator of legacy Sprout key records: the
// paying key a_pk followed by the encryption key pk_enc.
type SproutPaymentAddress struct {
	APk   [32]byte
	PkEnc [32]byte
}

func (a *SproutPaymentAddress) Parse(p *parser.Parser) error {
	if err := parseBlob(p, a.APk[:]); err != nil {
		return parser.Wrap(err, "a_pk")
	}
	return parser.Wrap(parseBlob(p, a.PkEnc[:]), "pk_enc")
}

func (a SproutPaymentAddress) String() string {
	return hex.EncodeToString(a.APk[:]) + hex.EncodeToString(a.PkEnc[:])
}

// SproutSpendingKey is the 252-bit spending key scalar, stored as 32
// little-endian bytes whose most significant four bits must be clear.
type SproutSpendingKey [32]byte

func (k *SproutSpendingKey) Parse(p *parser.Parser) error {
	if err := parseBlob(p, k[:]); err != nil {
		return err
	}
	if k[31]&0xf0 != 0 {
		return &InvalidBitPatternError{Kind: "u252"}
	}
	return nil
}

// SproutKey pairs a Sprout spending key with the metadata from its
// co-keyed zkeymeta record.
type SproutKey struct {
	key      SproutSpendingKey
	metadata KeyMetadata
}

func NewSproutKey(key SproutSpendingKey, metadata KeyMetadata) SproutKey {
	return SproutKey{key: key, metadata: metadata}
}

func (k SproutKey) Key() SproutSpendingKey { return k.key }
func (k SproutKey) Metadata() KeyMetadata  { return k.metadata }

// SproutKeys maps payment addresses to their decoded spending keys.
type SproutKeys map[SproutPaymentAddress]SproutKey
