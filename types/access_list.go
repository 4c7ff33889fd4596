package types

// AccessTuple is one entry of an access list: an address plus the storage
// keys the transaction expects to touch under it. Keys keep the order they
// were supplied in and duplicates are not collapsed.
type AccessTuple struct {
	Address     Address `json:"address"`
	StorageKeys []Hash  `json:"storageKeys"`
}

// AccessList is the ordered list of accounts and storage slots a transaction
// declares up front
type AccessList []AccessTuple

// StorageKeys returns the total number of storage keys in the access list
func (al AccessList) StorageKeys() int {
	sum := 0
	for _, tuple := range al {
		sum += len(tuple.StorageKeys)
	}

	return sum
}

// Copy returns a deep copy
func (al AccessList) Copy() AccessList {
	if al == nil {
		return nil
	}

	aa := make(AccessList, len(al))

	for i, tuple := range al {
		keys := make([]Hash, len(tuple.StorageKeys))
		copy(keys, tuple.StorageKeys)

		aa[i] = AccessTuple{
			Address:     tuple.Address,
			StorageKeys: keys,
		}
	}

	return aa
}
