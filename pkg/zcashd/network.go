package zcashd

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

// NetworkInfo identifies the chain a wallet belongs to, stored as a pair
// of strings ("Zcash", network id).
type NetworkInfo struct {
	name    string
	network string
}

func (n *NetworkInfo) Parse(p *parser.Parser) error {
	var err error
	if n.name, err = parser.ParseString(p); err != nil {
		return parser.Wrap(err, "network info name")
	}
	if n.network, err = parser.ParseString(p); err != nil {
		return parser.Wrap(err, "network id")
	}
	if n.name != "Zcash" {
		return ErrNotZcashNetworkInfo
	}
	return nil
}

// Network returns the network id string (main, test, regtest).
func (n NetworkInfo) Network() string { return n.network }

// BlockLocator is a list of block hashes from tip backwards; the bestblock
// record of 6.0.0 wallets is an empty locator.
type BlockLocator []chainhash.Hash

func (l *BlockLocator) Parse(p *parser.Parser) error {
	hashes, err := parseHashVector(p)
	if err != nil {
		return parser.Wrap(err, "block locator hashes")
	}
	*l = hashes
	return nil
}

// IsEmpty reports whether the locator carries no hashes.
func (l BlockLocator) IsEmpty() bool {
	return len(l) == 0
}
