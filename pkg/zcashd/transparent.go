package zcashd

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

// Accepted serialized public key lengths: compressed and uncompressed
// secp256k1 points.
var pubKeyLengths = []int{33, 65}

// Accepted serialized private key lengths: the two DER encodings zcashd
// ever wrote.
var privKeyLengths = []int{214, 279}

// PubKey is a serialized secp256k1 public key, the locator of transparent
// key records.
type PubKey struct {
	data []byte
}

func (k *PubKey) Parse(p *parser.Parser) error {
	length, err := parser.ParseCompactSize(p)
	if err != nil {
		return parser.Wrap(err, "PubKey size")
	}
	if int(length) != 33 && int(length) != 65 {
		return &InvalidLengthError{
			Kind:     "pubkey",
			Expected: pubKeyLengths,
			Actual:   int(length),
		}
	}
	k.data, err = parser.ParseBytes(p, int(length))
	return parser.Wrap(err, "PubKey")
}

// Bytes returns the serialized point.
func (k PubKey) Bytes() []byte {
	return k.data
}

// Hex returns the serialized point hex-encoded; used as the map key for
// keypair lookups.
func (k PubKey) Hex() string {
	return hex.EncodeToString(k.data)
}

// IsCompressed reports whether the stored point uses the 33-byte form.
func (k PubKey) IsCompressed() bool {
	return len(k.data) == 33
}

// ECPubKey decodes the stored bytes into a usable secp256k1 point. The
// reconstruction pass itself never needs this; it exists for consumers
// validating key material downstream.
func (k PubKey) ECPubKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(k.data)
}

// PrivKey is the secret material of a transparent key record: the
// DER-encoded key bytes plus the hash zcashd stores to detect corruption.
type PrivKey struct {
	data []byte
	hash chainhash.Hash
}

func (k *PrivKey) Parse(p *parser.Parser) error {
	length, err := parser.ParseCompactSize(p)
	if err != nil {
		return parser.Wrap(err, "PrivKey size")
	}
	if int(length) != 214 && int(length) != 279 {
		return &InvalidLengthError{
			Kind:     "privkey",
			Expected: privKeyLengths,
			Actual:   int(length),
		}
	}
	if k.data, err = parser.ParseBytes(p, int(length)); err != nil {
		return parser.Wrap(err, "PrivKey")
	}
	if k.hash, err = parseHash(p); err != nil {
		return parser.Wrap(err, "PrivKey hash")
	}
	return nil
}

// Bytes returns the DER-encoded secret key material.
func (k PrivKey) Bytes() []byte {
	return k.data
}

// Hash returns the hash embedded after the key material.
func (k PrivKey) Hash() chainhash.Hash {
	return k.hash
}

// KeyPair pairs a transparent pubkey with its secret material and creation
// metadata.
type KeyPair struct {
	pubKey   PubKey
	privKey  PrivKey
	metadata KeyMetadata
}

// NewKeyPair combines the decoded parts of a key/keymeta record pair,
// verifying the embedded hash equals the double-SHA256 of the pubkey and
// privkey bytes, the consistency check zcashd applies on load.
func NewKeyPair(pubKey PubKey, privKey PrivKey, metadata KeyMetadata) (KeyPair, error) {
	material := make([]byte, 0, len(pubKey.data)+len(privKey.data))
	material = append(material, pubKey.data...)
	material = append(material, privKey.data...)
	if chainhash.DoubleHashH(material) != privKey.hash {
		return KeyPair{}, ErrInvalidKeypair
	}
	return KeyPair{pubKey: pubKey, privKey: privKey, metadata: metadata}, nil
}

func (k KeyPair) PubKey() PubKey        { return k.pubKey }
func (k KeyPair) PrivKey() PrivKey      { return k.privKey }
func (k KeyPair) Metadata() KeyMetadata { return k.metadata }

// Keys maps hex-encoded pubkeys to their keypairs.
type Keys map[string]KeyPair

// WalletKey is a legacy wkey record: secret material plus validity window
// and comment. These have no paired metadata category.
type WalletKey struct {
	pubKey      PubKey
	privKey     PrivKey
	timeCreated int64
	timeExpires int64
	comment     string
}

func (k WalletKey) PubKey() PubKey     { return k.pubKey }
func (k WalletKey) PrivKey() PrivKey   { return k.privKey }
func (k WalletKey) TimeCreated() int64 { return k.timeCreated }
func (k WalletKey) TimeExpires() int64 { return k.timeExpires }
func (k WalletKey) Comment() string    { return k.comment }

// WalletKeys maps hex-encoded pubkeys to legacy wallet keys.
type WalletKeys map[string]WalletKey

// KeyPoolEntry is a pre-generated key waiting in the wallet's pool.
type KeyPoolEntry struct {
	Version int32
	Time    int64
	PubKey  PubKey
}

func (e *KeyPoolEntry) Parse(p *parser.Parser) error {
	var err error
	if e.Version, err = parser.ParseInt32(p); err != nil {
		return parser.Wrap(err, "key pool entry version")
	}
	if e.Time, err = parser.ParseInt64(p); err != nil {
		return parser.Wrap(err, "key pool entry time")
	}
	return parser.Parse(p, &e.PubKey, "key pool entry pubkey")
}
