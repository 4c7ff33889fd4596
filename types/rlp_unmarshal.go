package types

import (
	"fmt"
	"math/big"

	"github.com/dogechain-lab/fastrlp"
)

var unmarshalParserPool fastrlp.ParserPool

// RLPUnmarshaler is the interface for the types that decode themselves from
// their canonical rlp encoding
type RLPUnmarshaler interface {
	UnmarshalRLP(input []byte) error
}

type unmarshalRLPFunc func(p *fastrlp.Parser, v *fastrlp.Value) error

// UnmarshalRlp parses the input with a pooled parser and hands the root
// value to the decode callback
func UnmarshalRlp(obj unmarshalRLPFunc, input []byte) error {
	p := unmarshalParserPool.Get()
	defer unmarshalParserPool.Put(p)

	v, err := p.Parse(input)
	if err != nil {
		return err
	}

	return obj(p, v)
}

// RlpUnmarshal parses raw rlp into a generic value
func RlpUnmarshal(input []byte) (*fastrlp.Value, error) {
	p := &fastrlp.Parser{}

	return p.Parse(input)
}

func (t *Transaction) UnmarshalRLP(input []byte) error {
	return UnmarshalRlp(t.UnmarshalRLPFrom, input)
}

// UnmarshalRLPFrom decodes the nine field signed legacy encoding
func (t *Transaction) UnmarshalRLPFrom(p *fastrlp.Parser, v *fastrlp.Value) error {
	elems, err := v.GetElems()
	if err != nil {
		return err
	}

	if len(elems) != 9 {
		return fmt.Errorf("incorrect number of elements to decode transaction, expected 9 but found %d",
			len(elems))
	}

	if err := t.unmarshalBodyFrom(elems[:6]); err != nil {
		return err
	}

	// V, R, S
	t.V = new(big.Int)
	if err = elems[6].GetBigInt(t.V); err != nil {
		return err
	}

	t.R = new(big.Int)
	if err = elems[7].GetBigInt(t.R); err != nil {
		return err
	}

	t.S = new(big.Int)
	if err = elems[8].GetBigInt(t.S); err != nil {
		return err
	}

	return nil
}

// unmarshalBodyFrom decodes the six real legacy fields
func (t *Transaction) unmarshalBodyFrom(elems []*fastrlp.Value) error {
	var err error

	// nonce
	if t.Nonce, err = elems[0].GetUint64(); err != nil {
		return err
	}

	// gasPrice
	t.GasPrice = new(big.Int)
	if err = elems[1].GetBigInt(t.GasPrice); err != nil {
		return err
	}

	// gas
	if t.Gas, err = elems[2].GetUint64(); err != nil {
		return err
	}

	// to, empty for contract creation
	if vv, _ := elems[3].Bytes(); len(vv) == AddressLength {
		addr := BytesToAddress(vv)
		t.To = &addr
	} else {
		t.To = nil
	}

	// value
	t.Value = new(big.Int)
	if err = elems[4].GetBigInt(t.Value); err != nil {
		return err
	}

	// input
	if t.Input, err = elems[5].GetBytes(t.Input[:0]); err != nil {
		return err
	}

	return nil
}

func (al *AccessList) UnmarshalRLP(input []byte) error {
	return UnmarshalRlp(al.UnmarshalRLPFrom, input)
}

// UnmarshalRLPFrom decodes a nested [[address, [storageKey...]], ...] list
func (al *AccessList) UnmarshalRLPFrom(p *fastrlp.Parser, v *fastrlp.Value) error {
	elems, err := v.GetElems()
	if err != nil {
		return err
	}

	list := make(AccessList, len(elems))

	for i, entry := range elems {
		fields, err := entry.GetElems()
		if err != nil {
			return err
		}

		if len(fields) != 2 {
			return fmt.Errorf("incorrect number of elements to decode access tuple, expected 2 but found %d",
				len(fields))
		}

		buf, err := fields[0].GetBytes(nil)
		if err != nil {
			return err
		}

		if len(buf) != AddressLength {
			return fmt.Errorf("incorrect address length %d in access tuple", len(buf))
		}

		list[i].Address = BytesToAddress(buf)

		keys, err := fields[1].GetElems()
		if err != nil {
			return err
		}

		storageKeys := make([]Hash, len(keys))
		for j, key := range keys {
			if err := key.GetHash(storageKeys[j][:]); err != nil {
				return err
			}
		}

		list[i].StorageKeys = storageKeys
	}

	*al = list

	return nil
}

func (t *AccessListTx) UnmarshalRLP(input []byte) error {
	return UnmarshalRlp(t.UnmarshalRLPFrom, input)
}

// UnmarshalRLPFrom decodes either form of the access list shape: the 8 item
// signing body or the 11 item transmit body. The leading chain id is an
// encoding argument rather than part of the value, so it is checked for
// well-formedness and dropped.
func (t *AccessListTx) UnmarshalRLPFrom(p *fastrlp.Parser, v *fastrlp.Value) error {
	elems, err := v.GetElems()
	if err != nil {
		return err
	}

	if len(elems) != 8 && len(elems) != 11 {
		return fmt.Errorf("incorrect number of elements to decode access list transaction, "+
			"expected 8 or 11 but found %d", len(elems))
	}

	// chainId
	if _, err := elems[0].GetUint64(); err != nil {
		return err
	}

	if t.Tx == nil {
		t.Tx = new(Transaction)
	}

	if err := t.Tx.unmarshalBodyFrom(elems[1:7]); err != nil {
		return err
	}

	if err := t.AccessList.UnmarshalRLPFrom(p, elems[7]); err != nil {
		return err
	}

	if len(elems) == 11 {
		t.Tx.V = new(big.Int)
		if err = elems[8].GetBigInt(t.Tx.V); err != nil {
			return err
		}

		t.Tx.R = new(big.Int)
		if err = elems[9].GetBigInt(t.Tx.R); err != nil {
			return err
		}

		t.Tx.S = new(big.Int)
		if err = elems[10].GetBigInt(t.Tx.S); err != nil {
			return err
		}
	}

	return nil
}
