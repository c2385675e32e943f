package zcashd

import (
	"encoding/hex"

	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

// SaplingIncomingViewingKey is the locator of Sapling key records, a
// 32-byte scalar kept opaque by the core.
type SaplingIncomingViewingKey [32]byte

func (k *SaplingIncomingViewingKey) Parse(p *parser.Parser) error {
	return parseBlob(p, k[:])
}

func (k SaplingIncomingViewingKey) String() string {
	return hex.EncodeToString(k[:])
}

// SaplingExtendedSpendingKey is the ZIP-32 extended spending key stored in
// sapzkey record values: 169 bytes of HD parameters and key components.
type SaplingExtendedSpendingKey struct {
	Depth        uint8
	ParentFVKTag [4]byte
	ChildIndex   uint32
	ChainCode    [32]byte
	Ask          [32]byte
	Nsk          [32]byte
	Ovk          [32]byte
	Dk           [32]byte
}

func (k *SaplingExtendedSpendingKey) Parse(p *parser.Parser) error {
	var err error
	if k.Depth, err = parser.ParseUint8(p); err != nil {
		return parser.Wrap(err, "spending key depth")
	}
	if err = parseBlob(p, k.ParentFVKTag[:]); err != nil {
		return parser.Wrap(err, "parent FVK tag")
	}
	if k.ChildIndex, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "child index")
	}
	for _, field := range []struct {
		name string
		dst  []byte
	}{
		{"chain code", k.ChainCode[:]},
		{"ask", k.Ask[:]},
		{"nsk", k.Nsk[:]},
		{"ovk", k.Ovk[:]},
		{"dk", k.Dk[:]},
	} {
		if err = parseBlob(p, field.dst); err != nil {
			return parser.Wrap(err, field.name)
		}
	}
	return nil
}

// SaplingKey pairs an incoming viewing key with the spending key and
// metadata decoded from the co-keyed sapzkey/sapzkeymeta records.
type SaplingKey struct {
	ivk      SaplingIncomingViewingKey
	key      SaplingExtendedSpendingKey
	metadata KeyMetadata
}

func NewSaplingKey(
	ivk SaplingIncomingViewingKey,
	key SaplingExtendedSpendingKey,
	metadata KeyMetadata,
) SaplingKey {
	return SaplingKey{ivk: ivk, key: key, metadata: metadata}
}

func (k SaplingKey) IVK() SaplingIncomingViewingKey  { return k.ivk }
func (k SaplingKey) Key() SaplingExtendedSpendingKey { return k.key }
func (k SaplingKey) Metadata() KeyMetadata           { return k.metadata }

// SaplingKeys maps incoming viewing keys to their decoded entries.
type SaplingKeys map[SaplingIncomingViewingKey]SaplingKey

// SaplingZPaymentAddress is a Sapling shielded payment address: an 11-byte
// diversifier plus the 32-byte diversified transmission key.
type SaplingZPaymentAddress struct {
	Diversifier [11]byte
	Pkd         [32]byte
}

func (a *SaplingZPaymentAddress) Parse(p *parser.Parser) error {
	if err := parseBlob(p, a.Diversifier[:]); err != nil {
		return parser.Wrap(err, "diversifier")
	}
	return parser.Wrap(parseBlob(p, a.Pkd[:]), "pk_d")
}

func (a SaplingZPaymentAddress) String() string {
	return hex.EncodeToString(a.Diversifier[:]) + hex.EncodeToString(a.Pkd[:])
}
