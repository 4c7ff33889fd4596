package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessListEmptyRLP(t *testing.T) {
	t.Parallel()

	// an empty access list is the empty rlp list
	assert.Equal(t, []byte{0xc0}, AccessList{}.MarshalRLPTo(nil))
	assert.Equal(t, []byte{0xc0}, AccessList(nil).MarshalRLPTo(nil))
}

func TestAccessListRLPRoundTrip(t *testing.T) {
	t.Parallel()

	list := AccessList{
		{
			Address: StringToAddress("0x1122334455667788990011223344556677889900"),
			StorageKeys: []Hash{
				StringToHash("0x01"),
				StringToHash("0x02"),
			},
		},
		{
			// empty storage key list is legal
			Address:     StringToAddress("0x2"),
			StorageKeys: []Hash{},
		},
		{
			// duplicates are preserved, not collapsed
			Address: StringToAddress("0x1122334455667788990011223344556677889900"),
			StorageKeys: []Hash{
				StringToHash("0x01"),
				StringToHash("0x01"),
			},
		},
	}

	enc := list.MarshalRLPTo(nil)

	decoded := AccessList{}
	require.NoError(t, decoded.UnmarshalRLP(enc))
	assert.Equal(t, list, decoded)
}

func TestAccessListRLPShape(t *testing.T) {
	t.Parallel()

	list := AccessList{
		{
			Address:     ZeroAddress,
			StorageKeys: []Hash{ZeroHash},
		},
	}

	v, err := RlpUnmarshal(list.MarshalRLPTo(nil))
	require.NoError(t, err)

	entries, err := v.GetElems()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	fields, err := entries[0].GetElems()
	require.NoError(t, err)
	require.Len(t, fields, 2)

	// 20 byte address string
	addr, err := fields[0].GetBytes(nil)
	require.NoError(t, err)
	assert.Len(t, addr, AddressLength)

	// nested list of 32 byte storage keys
	keys, err := fields[1].GetElems()
	require.NoError(t, err)
	require.Len(t, keys, 1)

	key, err := keys[0].GetBytes(nil)
	require.NoError(t, err)
	assert.Equal(t, ZeroHash.Bytes(), key)
}

func TestAccessListJSON(t *testing.T) {
	t.Parallel()

	list := AccessList{
		{
			Address:     StringToAddress("0x1"),
			StorageKeys: []Hash{StringToHash("0x2")},
		},
	}

	enc, err := json.Marshal(list)
	require.NoError(t, err)

	// the item keys follow the camel cased outward convention
	assert.Contains(t, string(enc), `"address"`)
	assert.Contains(t, string(enc), `"storageKeys"`)

	decoded := AccessList{}
	require.NoError(t, json.Unmarshal(enc, &decoded))
	assert.Equal(t, list, decoded)
}

func TestAccessListCopy(t *testing.T) {
	t.Parallel()

	list := AccessList{
		{
			Address:     StringToAddress("0x1"),
			StorageKeys: []Hash{StringToHash("0x2")},
		},
	}

	clone := list.Copy()
	require.Equal(t, list, clone)

	clone[0].StorageKeys[0] = StringToHash("0xff")
	assert.NotEqual(t, list[0].StorageKeys[0], clone[0].StorageKeys[0])

	assert.Nil(t, AccessList(nil).Copy())
}

func TestAccessListStorageKeys(t *testing.T) {
	t.Parallel()

	list := AccessList{
		{Address: Address{}, StorageKeys: []Hash{{}, {}}},
		{Address: Address{}, StorageKeys: nil},
		{Address: Address{}, StorageKeys: []Hash{{}}},
	}

	assert.Equal(t, 3, list.StorageKeys())
}
