package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dogechain-lab/fastrlp"
	"github.com/evmstack/txkit/helper/keccak"
)

// TxType discriminates the transaction shapes inside an envelope. The value
// doubles as the first byte of the signing preimage and as the textual
// "type" tag.
type TxType byte

const (
	// LegacyTxType is the classic nine field transaction
	LegacyTxType TxType = 0x00

	// AccessListTxType is the EIP-2930 access list transaction
	AccessListTxType TxType = 0x01
)

var (
	// ErrMalformedTxInput is returned when the textual document cannot be
	// decoded into a transaction object
	ErrMalformedTxInput = errors.New("malformed transaction input")

	// ErrUnknownTxType is returned when the type tag is not one of the two
	// supported shapes
	ErrUnknownTxType = errors.New("unknown transaction type")

	// ErrMissingTxField is returned when a required field is absent from the
	// textual document
	ErrMissingTxField = errors.New("missing required transaction field")
)

func (t TxType) String() string {
	return fmt.Sprintf("0x%02x", byte(t))
}

func (t TxType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TxType) UnmarshalText(input []byte) error {
	switch string(input) {
	case "0x00":
		*t = LegacyTxType
	case "0x01":
		*t = AccessListTxType
	default:
		return fmt.Errorf("%w %q", ErrUnknownTxType, string(input))
	}

	return nil
}

// TxEnvelope is the tagged union of the two transaction shapes. The variant
// is fixed at construction. Exactly one of the two inner values is set.
type TxEnvelope struct {
	txType     TxType
	legacy     *Transaction
	accessList *AccessListTx
}

// NewLegacyTxEnvelope wraps a legacy transaction into a 0x00 envelope
func NewLegacyTxEnvelope(tx *Transaction) *TxEnvelope {
	return &TxEnvelope{
		txType: LegacyTxType,
		legacy: tx,
	}
}

// NewAccessListTxEnvelope wraps an access list transaction into a 0x01 envelope
func NewAccessListTxEnvelope(tx *AccessListTx) *TxEnvelope {
	return &TxEnvelope{
		txType:     AccessListTxType,
		accessList: tx,
	}
}

func (e *TxEnvelope) Type() TxType {
	return e.txType
}

// Legacy returns the inner legacy transaction, nil for other variants
func (e *TxEnvelope) Legacy() *Transaction {
	return e.legacy
}

// AccessListTx returns the inner access list transaction, nil for other variants
func (e *TxEnvelope) AccessListTx() *AccessListTx {
	return e.accessList
}

// Copy returns a deep copy
func (e *TxEnvelope) Copy() *TxEnvelope {
	ee := &TxEnvelope{
		txType: e.txType,
	}

	if e.legacy != nil {
		ee.legacy = e.legacy.Copy()
	}

	if e.accessList != nil {
		ee.accessList = e.accessList.Copy()
	}

	return ee
}

// SigHash computes the typed signing hash for the envelope,
// keccak256(typeByte || signingBody). Note that under this scheme the legacy
// variant is domain separated by the 0x00 prefix: callers needing the
// classical legacy preimage hash use Transaction.SigningHash directly.
func (e *TxEnvelope) SigHash(chainID uint64) (h Hash) {
	ar := marshalArenaPool.Get()
	hash := keccak.DefaultKeccakPool.Get()

	defer func() {
		keccak.DefaultKeccakPool.Put(hash)
		marshalArenaPool.Put(ar)
	}()

	var v *fastrlp.Value

	switch e.txType {
	case LegacyTxType:
		v = e.legacy.MarshalSigningRLPWith(ar, chainID)
	case AccessListTxType:
		v = e.accessList.MarshalSigningRLPWith(ar, chainID)
	}

	//nolint:errcheck
	hash.Write([]byte{byte(e.txType)})
	hash.WriteRlp(h[:0], v)

	return h
}

// MarshalJSON flattens the inner shape next to the explicit type tag
func (e *TxEnvelope) MarshalJSON() ([]byte, error) {
	var obj *txJSON

	switch e.txType {
	case LegacyTxType:
		obj = e.legacy.toJSON()
	case AccessListTxType:
		obj = e.accessList.Tx.toJSON()
		list := e.accessList.AccessList
		if list == nil {
			// a nil list is the empty list, keep the key present
			list = AccessList{}
		}

		obj.AccessList = &list
	}

	typ := e.txType
	obj.Type = &typ

	return json.Marshal(obj)
}

// UnmarshalJSON dispatches on the type tag
func (e *TxEnvelope) UnmarshalJSON(input []byte) error {
	var obj txJSON

	if err := json.Unmarshal(input, &obj); err != nil {
		if errors.Is(err, ErrUnknownTxType) {
			return err
		}

		return fmt.Errorf("%w: %s", ErrMalformedTxInput, err)
	}

	if obj.Type == nil {
		return fmt.Errorf("%w: type", ErrMissingTxField)
	}

	tx := new(Transaction)
	tx.fromJSON(&obj)

	switch *obj.Type {
	case LegacyTxType:
		*e = TxEnvelope{
			txType: LegacyTxType,
			legacy: tx,
		}
	case AccessListTxType:
		if obj.AccessList == nil {
			return fmt.Errorf("%w: access_list", ErrMissingTxField)
		}

		*e = TxEnvelope{
			txType: AccessListTxType,
			accessList: &AccessListTx{
				Tx:         tx,
				AccessList: *obj.AccessList,
			},
		}
	}

	return nil
}
