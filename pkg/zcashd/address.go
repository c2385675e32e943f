package zcashd

import "github.com/zewif-network/zewif-zcashd/pkg/parser"

// Address is a transparent or shielded payment address in its encoded
// string form, as stored in name and purpose record keys.
type Address string

func (a *Address) Parse(p *parser.Parser) error {
	s, err := parser.ParseString(p)
	if err != nil {
		return err
	}
	*a = Address(s)
	return nil
}

// RecipientMapping records that an outgoing payment to a bare receiver was
// originally addressed to a unified address.
type RecipientMapping struct {
	RecipientAddress string
	UnifiedAddress   string
}
