package zcashd

import "github.com/zewif-network/zewif-zcashd/pkg/parser"

// MaxMoney is the total monetary supply in zatoshi; every amount in the
// format must fall inside ±MaxMoney.
const MaxMoney = 21_000_000 * 100_000_000

// Transaction header layout and the version group ids of the three
// overwintered transaction generations.
const (
	overwinterFlagMask       = 0x80000000
	overwinterVersionGroupID = 0x03c48270
	saplingVersionGroupID    = 0x892f2085
	zip225VersionGroupID     = 0x26a7270a
)

// Serialized widths of the shielded components the core carries as opaque
// bytes: Sprout JoinSplit descriptions with PHGR and Groth proofs, Sapling
// v4 spend/output descriptions, their v5 split-out forms, Groth proofs and
// Orchard actions.
const (
	joinSplitPHGRSize   = 1802
	joinSplitGrothSize  = 1698
	saplingSpendV4Size  = 384
	saplingOutputV4Size = 948
	saplingSpendV5Size  = 96
	saplingOutputV5Size = 756
	grothProofSize      = 192
	redjubjubSigSize    = 64
	orchardActionSize   = 820
)

// OutPoint references an output of a previous transaction.
type OutPoint struct {
	Hash TxID
	N    uint32
}

func (o *OutPoint) Parse(p *parser.Parser) error {
	var err error
	if o.Hash, err = parseHash(p); err != nil {
		return parser.Wrap(err, "prevout hash")
	}
	o.N, err = parser.ParseUint32(p)
	return parser.Wrap(err, "prevout index")
}

// TxIn is a transparent transaction input.
type TxIn struct {
	PrevOut   OutPoint
	ScriptSig []byte
	Sequence  uint32
}

func (in *TxIn) Parse(p *parser.Parser) error {
	if err := parser.Parse(p, &in.PrevOut, "prevout"); err != nil {
		return err
	}
	var err error
	if in.ScriptSig, err = parser.ParseData(p); err != nil {
		return parser.Wrap(err, "scriptSig")
	}
	in.Sequence, err = parser.ParseUint32(p)
	return parser.Wrap(err, "sequence")
}

// TxOut is a transparent transaction output.
type TxOut struct {
	Value        int64
	ScriptPubKey []byte
}

func (out *TxOut) Parse(p *parser.Parser) error {
	var err error
	if out.Value, err = parser.ParseInt64(p); err != nil {
		return parser.Wrap(err, "output value")
	}
	if out.Value < 0 || out.Value > MaxMoney {
		return &InvalidAmountError{Kind: "output", Value: out.Value}
	}
	out.ScriptPubKey, err = parser.ParseData(p)
	return parser.Wrap(err, "scriptPubKey")
}

// OrchardBundle is the Orchard part of a v5 transaction; actions, proof
// and signatures stay opaque.
type OrchardBundle struct {
	Actions       [][]byte
	Flags         uint8
	ValueBalance  int64
	Anchor        [32]byte
	Proof         []byte
	SpendAuthSigs [][]byte
	BindingSig    []byte
}

// Transaction is a zcashd transaction, versions 1 through 5. Shielded
// proof material is carried as opaque byte runs of the fixed widths the
// format prescribes; the core never interprets it.
type Transaction struct {
	Version           int32
	Overwintered      bool
	VersionGroupID    uint32
	ConsensusBranchID uint32
	Vin               []TxIn
	Vout              []TxOut
	LockTime          uint32
	ExpiryHeight      uint32

	ValueBalanceSapling int64
	SaplingSpends       [][]byte
	SaplingOutputs      [][]byte
	SaplingAnchor       [32]byte
	SaplingSpendProofs  [][]byte
	SaplingSpendSigs    [][]byte
	SaplingOutputProofs [][]byte
	BindingSigSapling   []byte

	JoinSplits      [][]byte
	JoinSplitPubKey [32]byte
	JoinSplitSig    [64]byte

	Orchard *OrchardBundle
}

func (tx *Transaction) Parse(p *parser.Parser) error {
	header, err := parser.ParseUint32(p)
	if err != nil {
		return parser.Wrap(err, "transaction header")
	}
	tx.Overwintered = header&overwinterFlagMask != 0
	tx.Version = int32(header &^ overwinterFlagMask)

	if !tx.Overwintered {
		if tx.Version < 1 || tx.Version > 2 {
			return &InvalidBitPatternError{Kind: "transaction version"}
		}
		return tx.parseLegacy(p)
	}

	if tx.VersionGroupID, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "version group id")
	}
	switch {
	case tx.Version == 3 && tx.VersionGroupID == overwinterVersionGroupID:
		return tx.parseOverwinter(p)
	case tx.Version == 4 && tx.VersionGroupID == saplingVersionGroupID:
		return tx.parseSapling(p)
	case tx.Version == 5 && tx.VersionGroupID == zip225VersionGroupID:
		return tx.parseZip225(p)
	default:
		return &InvalidBitPatternError{Kind: "version group id"}
	}
}

func (tx *Transaction) parseTransparent(p *parser.Parser) error {
	count, err := parser.ParseCompactSize(p)
	if err != nil {
		return parser.Wrap(err, "input count")
	}
	tx.Vin = make([]TxIn, 0, minCap(count))
	for i := uint64(0); i < count; i++ {
		var in TxIn
		if err := parser.Parse(p, &in, "transaction input"); err != nil {
			return err
		}
		tx.Vin = append(tx.Vin, in)
	}

	if count, err = parser.ParseCompactSize(p); err != nil {
		return parser.Wrap(err, "output count")
	}
	tx.Vout = make([]TxOut, 0, minCap(count))
	for i := uint64(0); i < count; i++ {
		var out TxOut
		if err := parser.Parse(p, &out, "transaction output"); err != nil {
			return err
		}
		tx.Vout = append(tx.Vout, out)
	}
	return nil
}

// parseOpaqueVector reads a CompactSize-prefixed vector of fixed-width
// elements kept as raw bytes.
func parseOpaqueVector(p *parser.Parser, elementSize int, what string) ([][]byte, error) {
	count, err := parser.ParseCompactSize(p)
	if err != nil {
		return nil, parser.Wrap(err, what+" count")
	}
	elements := make([][]byte, 0, minCap(count))
	for i := uint64(0); i < count; i++ {
		element, err := parser.ParseBytes(p, elementSize)
		if err != nil {
			return nil, parser.Wrap(err, what)
		}
		elements = append(elements, element)
	}
	return elements, nil
}

// parseOpaqueRun reads count fixed-width elements without a preceding
// count, for the v5 layout where counts come from an earlier vector.
func parseOpaqueRun(p *parser.Parser, count, elementSize int, what string) ([][]byte, error) {
	elements := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		element, err := parser.ParseBytes(p, elementSize)
		if err != nil {
			return nil, parser.Wrap(err, what)
		}
		elements = append(elements, element)
	}
	return elements, nil
}

func (tx *Transaction) parseJoinSplits(p *parser.Parser) error {
	size := joinSplitPHGRSize
	if tx.Version >= 4 {
		size = joinSplitGrothSize
	}
	joinSplits, err := parseOpaqueVector(p, size, "JoinSplit description")
	if err != nil {
		return err
	}
	tx.JoinSplits = joinSplits
	if len(joinSplits) == 0 {
		return nil
	}
	if err := parseBlob(p, tx.JoinSplitPubKey[:]); err != nil {
		return parser.Wrap(err, "JoinSplit pubkey")
	}
	return parser.Wrap(parseBlob(p, tx.JoinSplitSig[:]), "JoinSplit signature")
}

func (tx *Transaction) parseLegacy(p *parser.Parser) error {
	if err := tx.parseTransparent(p); err != nil {
		return err
	}
	var err error
	if tx.LockTime, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "lock time")
	}
	if tx.Version >= 2 {
		return tx.parseJoinSplits(p)
	}
	return nil
}

func (tx *Transaction) parseOverwinter(p *parser.Parser) error {
	if err := tx.parseTransparent(p); err != nil {
		return err
	}
	var err error
	if tx.LockTime, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "lock time")
	}
	if tx.ExpiryHeight, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "expiry height")
	}
	return tx.parseJoinSplits(p)
}

func parseValueBalance(p *parser.Parser, what string) (int64, error) {
	value, err := parser.ParseInt64(p)
	if err != nil {
		return 0, parser.Wrap(err, what)
	}
	if value < -MaxMoney || value > MaxMoney {
		return 0, &InvalidAmountError{Kind: what, Value: value}
	}
	return value, nil
}

func (tx *Transaction) parseSapling(p *parser.Parser) error {
	if err := tx.parseTransparent(p); err != nil {
		return err
	}
	var err error
	if tx.LockTime, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "lock time")
	}
	if tx.ExpiryHeight, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "expiry height")
	}
	if tx.ValueBalanceSapling, err = parseValueBalance(p, "Sapling value balance"); err != nil {
		return err
	}
	if tx.SaplingSpends, err = parseOpaqueVector(p, saplingSpendV4Size, "Sapling spend"); err != nil {
		return err
	}
	if tx.SaplingOutputs, err = parseOpaqueVector(p, saplingOutputV4Size, "Sapling output"); err != nil {
		return err
	}
	if err = tx.parseJoinSplits(p); err != nil {
		return err
	}
	if len(tx.SaplingSpends)+len(tx.SaplingOutputs) > 0 {
		if tx.BindingSigSapling, err = parser.ParseBytes(p, redjubjubSigSize); err != nil {
			return parser.Wrap(err, "Sapling binding signature")
		}
	}
	return nil
}

func (tx *Transaction) parseZip225(p *parser.Parser) error {
	var err error
	if tx.ConsensusBranchID, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "consensus branch id")
	}
	if tx.LockTime, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "lock time")
	}
	if tx.ExpiryHeight, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "expiry height")
	}
	if err = tx.parseTransparent(p); err != nil {
		return err
	}
	if err = tx.parseSaplingV5(p); err != nil {
		return err
	}
	return tx.parseOrchardV5(p)
}

func (tx *Transaction) parseSaplingV5(p *parser.Parser) error {
	var err error
	if tx.SaplingSpends, err = parseOpaqueVector(p, saplingSpendV5Size, "Sapling spend"); err != nil {
		return err
	}
	if tx.SaplingOutputs, err = parseOpaqueVector(p, saplingOutputV5Size, "Sapling output"); err != nil {
		return err
	}
	spends, outputs := len(tx.SaplingSpends), len(tx.SaplingOutputs)
	if spends+outputs > 0 {
		if tx.ValueBalanceSapling, err = parseValueBalance(p, "Sapling value balance"); err != nil {
			return err
		}
	}
	if spends > 0 {
		if err = parseBlob(p, tx.SaplingAnchor[:]); err != nil {
			return parser.Wrap(err, "Sapling anchor")
		}
	}
	if tx.SaplingSpendProofs, err = parseOpaqueRun(p, spends, grothProofSize, "Sapling spend proof"); err != nil {
		return err
	}
	if tx.SaplingSpendSigs, err = parseOpaqueRun(p, spends, redjubjubSigSize, "Sapling spend auth signature"); err != nil {
		return err
	}
	if tx.SaplingOutputProofs, err = parseOpaqueRun(p, outputs, grothProofSize, "Sapling output proof"); err != nil {
		return err
	}
	if spends+outputs > 0 {
		if tx.BindingSigSapling, err = parser.ParseBytes(p, redjubjubSigSize); err != nil {
			return parser.Wrap(err, "Sapling binding signature")
		}
	}
	return nil
}

func (tx *Transaction) parseOrchardV5(p *parser.Parser) error {
	actions, err := parseOpaqueVector(p, orchardActionSize, "Orchard action")
	if err != nil {
		return err
	}
	if len(actions) == 0 {
		return nil
	}
	bundle := &OrchardBundle{Actions: actions}
	if bundle.Flags, err = parser.ParseUint8(p); err != nil {
		return parser.Wrap(err, "Orchard flags")
	}
	if bundle.ValueBalance, err = parseValueBalance(p, "Orchard value balance"); err != nil {
		return err
	}
	if err = parseBlob(p, bundle.Anchor[:]); err != nil {
		return parser.Wrap(err, "Orchard anchor")
	}
	if bundle.Proof, err = parser.ParseData(p); err != nil {
		return parser.Wrap(err, "Orchard proof")
	}
	if bundle.SpendAuthSigs, err = parseOpaqueRun(p, len(actions), redjubjubSigSize, "Orchard spend auth signature"); err != nil {
		return err
	}
	if bundle.BindingSig, err = parser.ParseBytes(p, redjubjubSigSize); err != nil {
		return parser.Wrap(err, "Orchard binding signature")
	}
	tx.Orchard = bundle
	return nil
}
