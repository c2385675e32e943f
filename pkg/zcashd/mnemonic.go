package zcashd

import (
	"fmt"

	"github.com/vulpemventures/go-bip39"

	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

// LanguageEnglish is the only mnemonic language zcashd ever emitted.
const LanguageEnglish uint32 = 0

// MnemonicSeed is the wallet's BIP-39 recovery phrase together with the
// fingerprint of the seed it produces.
type MnemonicSeed struct {
	fingerprint SeedFingerprint
	language    uint32
	phrase      string
}

func (m *MnemonicSeed) Parse(p *parser.Parser) error {
	var err error
	if m.language, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "mnemonic language")
	}
	m.phrase, err = parser.ParseString(p)
	return parser.Wrap(err, "mnemonic phrase")
}

// WithFingerprint attaches the seed fingerprint decoded from the record
// key.
func (m MnemonicSeed) WithFingerprint(fingerprint SeedFingerprint) MnemonicSeed {
	m.fingerprint = fingerprint
	return m
}

func (m MnemonicSeed) Fingerprint() SeedFingerprint { return m.fingerprint }
func (m MnemonicSeed) Language() uint32             { return m.language }
func (m MnemonicSeed) Phrase() string               { return m.phrase }

// Validate checks the phrase against the BIP-39 English word list. This is
// a diagnostic for consumers; the reconstruction pass does not gate on it
// because the on-disk format never did.
func (m MnemonicSeed) Validate() error {
	if m.language != LanguageEnglish {
		return fmt.Errorf("unsupported mnemonic language: %d", m.language)
	}
	if !bip39.IsMnemonicValid(m.phrase) {
		return fmt.Errorf("mnemonic phrase failed BIP-39 word list check")
	}
	return nil
}

// LegacyHDSeed is the pre-mnemonic HD seed some wallets still carry.
type LegacyHDSeed struct {
	Fingerprint SeedFingerprint
	Seed        []byte
}

// MnemonicHDChain is the HD chain state derived from the mnemonic seed,
// per zcashd's CHDChain.
type MnemonicHDChain struct {
	Version                     int32
	SeedFingerprint             SeedFingerprint
	CreateTime                  int64
	AccountCounter              uint32
	LegacyTKeyExternalCounter   uint32
	LegacyTKeyChangeCounter     uint32
	LegacySaplingKeyCounter     uint32
	MnemonicSeedBackupConfirmed bool
}

func (c *MnemonicHDChain) Parse(p *parser.Parser) error {
	var err error
	if c.Version, err = parser.ParseInt32(p); err != nil {
		return parser.Wrap(err, "HD chain version")
	}
	if err = parser.Parse(p, &c.SeedFingerprint, "HD chain seed fingerprint"); err != nil {
		return err
	}
	if c.CreateTime, err = parser.ParseInt64(p); err != nil {
		return parser.Wrap(err, "HD chain create time")
	}
	if c.AccountCounter, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "account counter")
	}
	if c.LegacyTKeyExternalCounter, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "legacy external key counter")
	}
	if c.LegacyTKeyChangeCounter, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "legacy change key counter")
	}
	if c.LegacySaplingKeyCounter, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "legacy sapling key counter")
	}
	c.MnemonicSeedBackupConfirmed, err = parser.ParseBool(p)
	return parser.Wrap(err, "seed backup confirmation")
}
