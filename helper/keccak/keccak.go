package keccak

import (
	"hash"

	"github.com/dogechain-lab/fastrlp"
	"golang.org/x/crypto/sha3"
)

// Keccak is a pooled keccak hasher with a scratch buffer for rlp values
type Keccak struct {
	buf  []byte
	hash hash.Hash
}

// NewKeccak256 returns a keccak-256 hasher
func NewKeccak256() *Keccak {
	return &Keccak{
		hash: sha3.NewLegacyKeccak256(),
	}
}

// Write implements io.Writer
func (k *Keccak) Write(b []byte) (int, error) {
	return k.hash.Write(b)
}

// Reset clears the hasher state so that it can be reused
func (k *Keccak) Reset() {
	k.buf = k.buf[:0]
	k.hash.Reset()
}

// Sum appends the current digest to dst
func (k *Keccak) Sum(dst []byte) []byte {
	return k.hash.Sum(dst)
}

// WriteRlp writes the marshaled rlp value to the hasher and
// appends the resulting digest to dst
func (k *Keccak) WriteRlp(dst []byte, v *fastrlp.Value) []byte {
	k.buf = v.MarshalTo(k.buf[:0])
	//nolint:errcheck
	k.Write(k.buf)

	return k.Sum(dst)
}

// Keccak256 appends the keccak-256 digest of src to dst
func Keccak256(dst, src []byte) []byte {
	k := DefaultKeccakPool.Get()
	defer DefaultKeccakPool.Put(k)

	//nolint:errcheck
	k.Write(src)

	return k.Sum(dst)
}
