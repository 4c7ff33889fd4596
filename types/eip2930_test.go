package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccessListTx() *AccessListTx {
	return NewAccessListTx(newTestTx(), AccessList{
		{
			Address:     StringToAddress("0x1122334455667788990011223344556677889900"),
			StorageKeys: []Hash{StringToHash("0x01"), StringToHash("0x02")},
		},
	})
}

func TestAccessListTxSigningRLP(t *testing.T) {
	t.Parallel()

	const chainID = uint64(1)

	tx := newTestAccessListTx()

	v, err := RlpUnmarshal(tx.MarshalSigningRLPTo(chainID, nil))
	require.NoError(t, err)

	elems, err := v.GetElems()
	require.NoError(t, err)

	// [chainId, nonce, gasPrice, gas, to, value, input, accessList]
	require.Len(t, elems, 8)

	id, err := elems[0].GetUint64()
	require.NoError(t, err)
	assert.Equal(t, chainID, id)

	nonce, err := elems[1].GetUint64()
	require.NoError(t, err)
	assert.Equal(t, tx.Tx.Nonce, nonce)

	entries, err := elems[7].GetElems()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAccessListTxSignedRLP(t *testing.T) {
	t.Parallel()

	const chainID = uint64(1)

	tx := newTestAccessListTx()
	sig := &Signature{
		V: big.NewInt(1),
		R: big.NewInt(0xbeef),
		S: big.NewInt(0xcafe),
	}

	v, err := RlpUnmarshal(tx.MarshalSignedRLPTo(chainID, sig, nil))
	require.NoError(t, err)

	elems, err := v.GetElems()
	require.NoError(t, err)

	// the transmit form appends the three signature slots
	require.Len(t, elems, 11)

	// the last three items are the canonical integer encodings of v, r, s
	sv := new(big.Int)
	require.NoError(t, elems[8].GetBigInt(sv))
	assertBigEqual(t, sig.V, sv)

	raw, err := elems[9].GetBytes(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xbe, 0xef}, raw)

	raw, err = elems[10].GetBytes(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xca, 0xfe}, raw)
}

func TestAccessListTxEmptyListSlot(t *testing.T) {
	t.Parallel()

	tx := NewAccessListTx(newTestTx(), AccessList{})

	v, err := RlpUnmarshal(tx.MarshalSigningRLPTo(1, nil))
	require.NoError(t, err)

	elems, err := v.GetElems()
	require.NoError(t, err)
	require.Len(t, elems, 8)

	entries, err := elems[7].GetElems()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAccessListTxRLPRoundTrip(t *testing.T) {
	t.Parallel()

	tx := newTestAccessListTx()

	// signing form, signature slots stay untouched
	decoded := &AccessListTx{}
	require.NoError(t, decoded.UnmarshalRLP(tx.MarshalSigningRLPTo(1, nil)))
	require.Equal(t, tx.AccessList, decoded.AccessList)
	require.Equal(t, tx.Tx.Nonce, decoded.Tx.Nonce)
	require.Nil(t, decoded.Tx.V)

	// transmit form carries the signature into the legacy body
	sig := &Signature{V: big.NewInt(1), R: big.NewInt(2), S: big.NewInt(3)}

	decoded = &AccessListTx{}
	require.NoError(t, decoded.UnmarshalRLP(tx.MarshalSignedRLPTo(1, sig, nil)))
	require.Equal(t, tx.AccessList, decoded.AccessList)
	assertBigEqual(t, sig.V, decoded.Tx.V)
	assertBigEqual(t, sig.R, decoded.Tx.R)
	assertBigEqual(t, sig.S, decoded.Tx.S)
}

func TestAccessListTxBadElementCount(t *testing.T) {
	t.Parallel()

	// a bare legacy encoding must not decode as the access list shape
	decoded := &AccessListTx{}
	assert.Error(t, decoded.UnmarshalRLP(newTestTx().MarshalRLP()))
}

func TestAccessListTxJSONRequiresList(t *testing.T) {
	t.Parallel()

	enc, err := json.Marshal(newTestTx())
	require.NoError(t, err)

	decoded := &AccessListTx{}
	err = json.Unmarshal(enc, decoded)
	require.ErrorIs(t, err, ErrMissingTxField)
}

func TestAccessListTxJSONNilList(t *testing.T) {
	t.Parallel()

	tx := NewAccessListTx(newTestTx(), nil)

	enc, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.Contains(t, string(enc), `"access_list":[]`)

	decoded := &AccessListTx{}
	require.NoError(t, json.Unmarshal(enc, decoded))
	require.Empty(t, decoded.AccessList)
	assertTxEqual(t, tx.Tx, decoded.Tx)
}

func TestAccessListTxCopy(t *testing.T) {
	t.Parallel()

	tx := newTestAccessListTx()
	clone := tx.Copy()

	require.Equal(t, tx.AccessList, clone.AccessList)
	assertTxEqual(t, tx.Tx, clone.Tx)

	clone.AccessList[0].StorageKeys[0] = StringToHash("0xff")
	assert.NotEqual(t, tx.AccessList[0].StorageKeys[0], clone.AccessList[0].StorageKeys[0])
}
