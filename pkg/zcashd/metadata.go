package zcashd

import "github.com/zewif-network/zewif-zcashd/pkg/parser"

// KeyMetadata versions that extend the serialized layout, per zcashd's
// CKeyMetadata.
const (
	keyMetadataVersionWithHDData    = 10
	keyMetadataVersionWithKeyOrigin = 12
)

// KeyMetadata is the creation metadata stored alongside every key record
// (keymeta, sapzkeymeta, zkeymeta).
type KeyMetadata struct {
	Version         int32
	CreateTime      int64
	HDKeypath       string
	SeedFingerprint SeedFingerprint
}

func (m *KeyMetadata) Parse(p *parser.Parser) error {
	var err error
	if m.Version, err = parser.ParseInt32(p); err != nil {
		return parser.Wrap(err, "key metadata version")
	}
	if m.CreateTime, err = parser.ParseInt64(p); err != nil {
		return parser.Wrap(err, "key metadata create time")
	}
	if m.Version >= keyMetadataVersionWithHDData {
		if m.HDKeypath, err = parser.ParseString(p); err != nil {
			return parser.Wrap(err, "key metadata HD keypath")
		}
	}
	if m.Version >= keyMetadataVersionWithKeyOrigin {
		if err = parser.Parse(p, &m.SeedFingerprint, "key metadata seed fingerprint"); err != nil {
			return err
		}
	}
	return nil
}
