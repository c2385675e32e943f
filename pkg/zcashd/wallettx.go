package zcashd

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

// MerkleTx is a transaction with its block attachment: the containing
// block hash, the merkle branch proving inclusion and the position index.
type MerkleTx struct {
	Tx           Transaction
	HashBlock    chainhash.Hash
	MerkleBranch []chainhash.Hash
	Index        int32
}

func (m *MerkleTx) Parse(p *parser.Parser) error {
	if err := parser.Parse(p, &m.Tx, "transaction"); err != nil {
		return err
	}
	var err error
	if m.HashBlock, err = parseHash(p); err != nil {
		return parser.Wrap(err, "block hash")
	}
	if m.MerkleBranch, err = parseHashVector(p); err != nil {
		return parser.Wrap(err, "merkle branch")
	}
	m.Index, err = parser.ParseInt32(p)
	return parser.Wrap(err, "merkle index")
}

// OrderFormEntry is one key/value pair of a wallet transaction's order
// form.
type OrderFormEntry struct {
	Key   string
	Value string
}

// WalletTx is a tx record value: the transaction plus the bookkeeping
// zcashd's CWalletTx persists around it.
type WalletTx struct {
	MerkleTx

	VtxPrev               []MerkleTx
	MapValue              map[string]string
	OrderForm             []OrderFormEntry
	TimeReceivedIsTxValid bool
	TimeReceived          uint32
	FromMe                bool
	Spent                 bool
}

func (w *WalletTx) Parse(p *parser.Parser) error {
	if err := w.MerkleTx.Parse(p); err != nil {
		return err
	}

	count, err := parser.ParseCompactSize(p)
	if err != nil {
		return parser.Wrap(err, "vtxPrev count")
	}
	w.VtxPrev = make([]MerkleTx, 0, minCap(count))
	for i := uint64(0); i < count; i++ {
		var prev MerkleTx
		if err := parser.Parse(p, &prev, "vtxPrev entry"); err != nil {
			return err
		}
		w.VtxPrev = append(w.VtxPrev, prev)
	}

	if count, err = parser.ParseCompactSize(p); err != nil {
		return parser.Wrap(err, "mapValue count")
	}
	w.MapValue = make(map[string]string, minCap(count))
	for i := uint64(0); i < count; i++ {
		key, err := parser.ParseString(p)
		if err != nil {
			return parser.Wrap(err, "mapValue key")
		}
		value, err := parser.ParseString(p)
		if err != nil {
			return parser.Wrap(err, "mapValue value")
		}
		w.MapValue[key] = value
	}

	if count, err = parser.ParseCompactSize(p); err != nil {
		return parser.Wrap(err, "order form count")
	}
	w.OrderForm = make([]OrderFormEntry, 0, minCap(count))
	for i := uint64(0); i < count; i++ {
		var entry OrderFormEntry
		if entry.Key, err = parser.ParseString(p); err != nil {
			return parser.Wrap(err, "order form key")
		}
		if entry.Value, err = parser.ParseString(p); err != nil {
			return parser.Wrap(err, "order form value")
		}
		w.OrderForm = append(w.OrderForm, entry)
	}

	if w.TimeReceivedIsTxValid, err = parser.ParseBool(p); err != nil {
		return parser.Wrap(err, "fTimeReceivedIsTxValid")
	}
	if w.TimeReceived, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "time received")
	}
	if w.FromMe, err = parser.ParseBool(p); err != nil {
		return parser.Wrap(err, "fFromMe")
	}
	w.Spent, err = parser.ParseBool(p)
	return parser.Wrap(err, "fSpent")
}
