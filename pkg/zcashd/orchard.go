package zcashd

import "github.com/zewif-network/zewif-zcashd/pkg/parser"

// OrchardNoteCommitmentTree is the serialized Orchard commitment tree.
// The core keeps the tree bytes opaque; only the leading serialization
// version tag is decoded. The migration layer deserializes the frontier.
type OrchardNoteCommitmentTree struct {
	Version uint32
	Data    []byte
}

func (t *OrchardNoteCommitmentTree) Parse(p *parser.Parser) error {
	var err error
	if t.Version, err = parser.ParseUint32(p); err != nil {
		return parser.Wrap(err, "note commitment tree version")
	}
	t.Data, err = parser.ParseBytes(p, p.Remaining())
	return err
}
