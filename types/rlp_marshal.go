package types

import (
	"github.com/dogechain-lab/fastrlp"
)

var marshalArenaPool fastrlp.ArenaPool

// RLPMarshaler is the interface for the types that produce their canonical
// rlp encoding
type RLPMarshaler interface {
	MarshalRLPTo(dst []byte) []byte
}

type marshalRLPFunc func(ar *fastrlp.Arena) *fastrlp.Value

// MarshalRLPTo renders an rlp value with a pooled arena and appends the
// encoding to dst
func MarshalRLPTo(obj marshalRLPFunc, dst []byte) []byte {
	ar := marshalArenaPool.Get()
	dst = obj(ar).MarshalTo(dst)
	marshalArenaPool.Put(ar)

	return dst
}

func (t *Transaction) MarshalRLP() []byte {
	return t.MarshalRLPTo(nil)
}

func (t *Transaction) MarshalRLPTo(dst []byte) []byte {
	return MarshalRLPTo(t.MarshalRLPWith, dst)
}

// MarshalBodyWith appends the six real fields of the legacy shape to dst in
// canonical order: nonce, gasPrice, gas, to, value, input. The trailing
// slots differ per shape, so the callers append them on their own.
func (t *Transaction) MarshalBodyWith(arena *fastrlp.Arena, dst *fastrlp.Value) {
	dst.Set(arena.NewUint(t.Nonce))
	dst.Set(arena.NewBigInt(t.GasPrice))
	dst.Set(arena.NewUint(t.Gas))

	// Address may be empty
	if t.To != nil {
		dst.Set(arena.NewCopyBytes((*t.To).Bytes()))
	} else {
		dst.Set(arena.NewNull())
	}

	dst.Set(arena.NewBigInt(t.Value))
	dst.Set(arena.NewCopyBytes(t.Input))
}

// MarshalRLPWith renders the nine field signed legacy encoding
func (t *Transaction) MarshalRLPWith(arena *fastrlp.Arena) *fastrlp.Value {
	vv := arena.NewArray()

	t.MarshalBodyWith(arena, vv)

	// signature values
	vv.Set(arena.NewBigInt(t.V))
	vv.Set(arena.NewBigInt(t.R))
	vv.Set(arena.NewBigInt(t.S))

	return vv
}

// MarshalSigningRLPWith renders the EIP-155 signing preimage body,
// [nonce, gasPrice, gas, to, value, input, chainId, 0, 0]
func (t *Transaction) MarshalSigningRLPWith(arena *fastrlp.Arena, chainID uint64) *fastrlp.Value {
	vv := arena.NewArray()

	t.MarshalBodyWith(arena, vv)

	vv.Set(arena.NewUint(chainID))
	vv.Set(arena.NewUint(0))
	vv.Set(arena.NewUint(0))

	return vv
}

// MarshalSigningRLPTo appends the EIP-155 signing preimage body to dst
func (t *Transaction) MarshalSigningRLPTo(chainID uint64, dst []byte) []byte {
	return MarshalRLPTo(func(ar *fastrlp.Arena) *fastrlp.Value {
		return t.MarshalSigningRLPWith(ar, chainID)
	}, dst)
}

// MarshalRLPWith renders the access list as a nested list of
// [address, [storageKey...]] pairs. An empty access list is the empty list.
func (al AccessList) MarshalRLPWith(arena *fastrlp.Arena) *fastrlp.Value {
	vv := arena.NewArray()

	for _, tuple := range al {
		entry := arena.NewArray()
		entry.Set(arena.NewCopyBytes(tuple.Address.Bytes()))

		keys := arena.NewArray()
		for _, key := range tuple.StorageKeys {
			keys.Set(arena.NewCopyBytes(key.Bytes()))
		}

		entry.Set(keys)
		vv.Set(entry)
	}

	return vv
}

func (al AccessList) MarshalRLPTo(dst []byte) []byte {
	return MarshalRLPTo(al.MarshalRLPWith, dst)
}

// MarshalSigningRLPWith renders the EIP-2930 signing preimage body,
// [chainId, nonce, gasPrice, gas, to, value, input, accessList]
func (t *AccessListTx) MarshalSigningRLPWith(arena *fastrlp.Arena, chainID uint64) *fastrlp.Value {
	vv := arena.NewArray()

	vv.Set(arena.NewUint(chainID))
	t.Tx.MarshalBodyWith(arena, vv)
	vv.Set(t.AccessList.MarshalRLPWith(arena))

	return vv
}

// MarshalSigningRLPTo appends the signing preimage body to dst
func (t *AccessListTx) MarshalSigningRLPTo(chainID uint64, dst []byte) []byte {
	return MarshalRLPTo(func(ar *fastrlp.Arena) *fastrlp.Value {
		return t.MarshalSigningRLPWith(ar, chainID)
	}, dst)
}

// MarshalSignedRLPWith renders the transmit form,
// [chainId, nonce, gasPrice, gas, to, value, input, accessList, v, r, s]
func (t *AccessListTx) MarshalSignedRLPWith(
	arena *fastrlp.Arena,
	chainID uint64,
	sig *Signature,
) *fastrlp.Value {
	vv := t.MarshalSigningRLPWith(arena, chainID)

	vv.Set(arena.NewBigInt(sig.V))
	vv.Set(arena.NewBigInt(sig.R))
	vv.Set(arena.NewBigInt(sig.S))

	return vv
}

// MarshalSignedRLPTo appends the transmit form body to dst
func (t *AccessListTx) MarshalSignedRLPTo(chainID uint64, sig *Signature, dst []byte) []byte {
	return MarshalRLPTo(func(ar *fastrlp.Arena) *fastrlp.Value {
		return t.MarshalSignedRLPWith(ar, chainID, sig)
	}, dst)
}
