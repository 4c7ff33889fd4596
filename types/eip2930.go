package types

// AccessListTx is an EIP-2930 transaction: a legacy transaction body plus an
// access list. The chain id is not stored with the value, it is supplied to
// the encoding operations instead.
type AccessListTx struct {
	Tx         *Transaction
	AccessList AccessList
}

// NewAccessListTx attaches an access list to a legacy transaction body
func NewAccessListTx(tx *Transaction, list AccessList) *AccessListTx {
	return &AccessListTx{
		Tx:         tx,
		AccessList: list,
	}
}

// Copy returns a deep copy
func (t *AccessListTx) Copy() *AccessListTx {
	tt := &AccessListTx{
		AccessList: t.AccessList.Copy(),
	}

	if t.Tx != nil {
		tt.Tx = t.Tx.Copy()
	}

	return tt
}
