package zcashd

import "github.com/zewif-network/zewif-zcashd/pkg/parser"

// UnifiedAddressMetadata describes one diversified unified address: which
// full viewing key it belongs to, at which diversifier index, with which
// receiver types.
type UnifiedAddressMetadata struct {
	KeyID            UfvkFingerprint
	DiversifierIndex [11]byte
	ReceiverTypes    []uint32
}

func (m *UnifiedAddressMetadata) Parse(p *parser.Parser) error {
	if err := parser.Parse(p, &m.KeyID, "ufvk fingerprint"); err != nil {
		return err
	}
	if err := parseBlob(p, m.DiversifierIndex[:]); err != nil {
		return parser.Wrap(err, "diversifier index")
	}
	count, err := parser.ParseCompactSize(p)
	if err != nil {
		return parser.Wrap(err, "receiver type count")
	}
	m.ReceiverTypes = make([]uint32, 0, minCap(count))
	for i := uint64(0); i < count; i++ {
		receiver, err := parser.ParseUint32(p)
		if err != nil {
			return parser.Wrap(err, "receiver type")
		}
		m.ReceiverTypes = append(m.ReceiverTypes, receiver)
	}
	return nil
}

// UnifiedAccountMetadata ties a ZIP-32 account under a seed to its full
// viewing key fingerprint.
type UnifiedAccountMetadata struct {
	SeedFingerprint SeedFingerprint
	BIP44CoinType   uint32
	ZIP32AccountID  uint32
	KeyID           UfvkFingerprint
}

func (m *UnifiedAccountMetadata) Parse(p *parser.Parser) error {
	if err := parser.Parse(p, &m.SeedFingerprint, "seed fingerprint"); err != nil {
		return err
	}
	var err error
	if m.BIP44CoinType, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "BIP 44 coin type")
	}
	if m.ZIP32AccountID, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "ZIP 32 account id")
	}
	return parser.Parse(p, &m.KeyID, "ufvk fingerprint")
}

// UnifiedAccounts aggregates the three unified-account record categories.
// Each sub-map may be empty when its category is absent from the dump.
type UnifiedAccounts struct {
	AddressMetadata []UnifiedAddressMetadata
	AccountMetadata map[UfvkFingerprint]UnifiedAccountMetadata
	FullViewingKeys map[UfvkFingerprint]string
}

// NewUnifiedAccounts returns an aggregate with empty sub-maps.
func NewUnifiedAccounts() UnifiedAccounts {
	return UnifiedAccounts{
		AccountMetadata: make(map[UfvkFingerprint]UnifiedAccountMetadata),
		FullViewingKeys: make(map[UfvkFingerprint]string),
	}
}
