package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/evmstack/txkit/helper/hex"
)

type argBig big.Int

func (a argBig) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeBig((*big.Int)(&a))), nil
}

func (a *argBig) UnmarshalText(input []byte) error {
	buf, err := hex.DecodeHex(string(input))
	if err != nil {
		return err
	}

	b := new(big.Int).SetBytes(buf)
	*a = argBig(*b)

	return nil
}

func argBigPtr(b *big.Int) *argBig {
	v := argBig(*b)

	return &v
}

type argUint64 uint64

func (u argUint64) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeUint64(uint64(u))), nil
}

func (u *argUint64) UnmarshalText(input []byte) error {
	num, err := hex.DecodeUint64(string(input))
	if err != nil {
		return err
	}

	*u = argUint64(num)

	return nil
}

func argUintPtr(n uint64) *argUint64 {
	v := argUint64(n)

	return &v
}

type argBytes []byte

func (b argBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToHex(b)), nil
}

func (b *argBytes) UnmarshalText(input []byte) error {
	hh, err := hex.DecodeHex(string(input))
	if err != nil {
		return err
	}

	aux := make([]byte, len(hh))
	copy(aux, hh)
	*b = aux

	return nil
}

func argBytesPtr(b []byte) *argBytes {
	v := argBytes(b)

	return &v
}

// txJSON is the flattened textual form shared by the raw shapes and the
// envelope. The access_list key only appears on the 0x01 variant and the
// type tag only on envelopes.
type txJSON struct {
	Type       *TxType     `json:"type,omitempty"`
	Nonce      *argUint64  `json:"nonce,omitempty"`
	GasPrice   *argBig     `json:"gasPrice,omitempty"`
	Gas        *argUint64  `json:"gas,omitempty"`
	To         *Address    `json:"to,omitempty"`
	Value      *argBig     `json:"value,omitempty"`
	Input      *argBytes   `json:"input,omitempty"`
	V          *argBig     `json:"v,omitempty"`
	R          *argBig     `json:"r,omitempty"`
	S          *argBig     `json:"s,omitempty"`
	From       *Address    `json:"from,omitempty"`
	AccessList *AccessList `json:"access_list,omitempty"`
}

func (t *Transaction) toJSON() *txJSON {
	obj := &txJSON{
		To: t.To,
	}

	if t.Nonce != 0 {
		obj.Nonce = argUintPtr(t.Nonce)
	}

	if t.GasPrice != nil {
		obj.GasPrice = argBigPtr(t.GasPrice)
	}

	if t.Gas != 0 {
		obj.Gas = argUintPtr(t.Gas)
	}

	if t.Value != nil {
		obj.Value = argBigPtr(t.Value)
	}

	if len(t.Input) != 0 {
		obj.Input = argBytesPtr(t.Input)
	}

	if t.V != nil {
		obj.V = argBigPtr(t.V)
	}

	if t.R != nil {
		obj.R = argBigPtr(t.R)
	}

	if t.S != nil {
		obj.S = argBigPtr(t.S)
	}

	if t.From != ZeroAddress {
		from := t.From
		obj.From = &from
	}

	return obj
}

func (t *Transaction) fromJSON(obj *txJSON) {
	if obj.Nonce != nil {
		t.Nonce = uint64(*obj.Nonce)
	}

	if obj.GasPrice != nil {
		t.GasPrice = (*big.Int)(obj.GasPrice)
	}

	if obj.Gas != nil {
		t.Gas = uint64(*obj.Gas)
	}

	t.To = obj.To

	if obj.Value != nil {
		t.Value = (*big.Int)(obj.Value)
	}

	if obj.Input != nil {
		t.Input = CopyBytes(*obj.Input)
	}

	if obj.V != nil {
		t.V = (*big.Int)(obj.V)
	}

	if obj.R != nil {
		t.R = (*big.Int)(obj.R)
	}

	if obj.S != nil {
		t.S = (*big.Int)(obj.S)
	}

	if obj.From != nil {
		t.From = *obj.From
	}
}

func (t *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.toJSON())
}

func (t *Transaction) UnmarshalJSON(input []byte) error {
	var obj txJSON

	if err := json.Unmarshal(input, &obj); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedTxInput, err)
	}

	t.fromJSON(&obj)

	return nil
}

func (t *AccessListTx) MarshalJSON() ([]byte, error) {
	obj := t.Tx.toJSON()

	list := t.AccessList
	if list == nil {
		// a nil list is the empty list, keep the key present
		list = AccessList{}
	}

	obj.AccessList = &list

	return json.Marshal(obj)
}

func (t *AccessListTx) UnmarshalJSON(input []byte) error {
	var obj txJSON

	if err := json.Unmarshal(input, &obj); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedTxInput, err)
	}

	if obj.AccessList == nil {
		return fmt.Errorf("%w: access_list", ErrMissingTxField)
	}

	tx := new(Transaction)
	tx.fromJSON(&obj)

	t.Tx = tx
	t.AccessList = *obj.AccessList

	return nil
}
