package types

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/evmstack/txkit/helper/hex"
	"github.com/evmstack/txkit/helper/keccak"
)

const (
	// HashLength is the size of a hash in bytes
	HashLength = 32

	// AddressLength is the size of an address in bytes
	AddressLength = 20
)

// Hash is an opaque 32 byte value. Storage keys are hashes.
type Hash [HashLength]byte

// Address is an opaque 20 byte account reference
type Address [AddressLength]byte

var (
	// ZeroAddress is the default zero address
	ZeroAddress = Address{}

	// ZeroHash is the default zero hash
	ZeroHash = Hash{}
)

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return hex.EncodeToHex(h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(input []byte) error {
	buf := StringToBytes(string(input))
	if len(buf) != HashLength {
		return fmt.Errorf("incorrect hash length %d", len(buf))
	}

	copy(h[:], buf)

	return nil
}

func (a Address) Bytes() []byte {
	return a[:]
}

// String returns the checksummed textual form of the address
func (a Address) String() string {
	return a.checksumEncode()
}

// checksumEncode implements the EIP-55 mixed-case encoding
func (a Address) checksumEncode() string {
	addrBytes := a.Bytes()
	lowercaseAddr := hex.EncodeToString(addrBytes)
	hashedAddress := hex.EncodeToString(keccak.Keccak256(nil, []byte(lowercaseAddr)))

	result := make([]rune, len(lowercaseAddr))

	for idx, ch := range lowercaseAddr {
		if ch >= '0' && ch <= '9' || hashedAddress[idx] < '8' {
			// numbers and lowercase characters below the hash nibble threshold stay as-is
			result[idx] = ch
		} else {
			result[idx] = unicode.ToUpper(ch)
		}
	}

	return "0x" + string(result)
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	buf := StringToBytes(strings.ToLower(string(input)))
	if len(buf) != AddressLength {
		return fmt.Errorf("incorrect address length %d", len(buf))
	}

	copy(a[:], buf)

	return nil
}

// BytesToHash sets the value to the rightmost 32 bytes of b
func BytesToHash(b []byte) Hash {
	var h Hash

	size := len(b)
	minSize := min(size, HashLength)

	copy(h[HashLength-minSize:], b[size-minSize:])

	return h
}

// BytesToAddress sets the value to the rightmost 20 bytes of b
func BytesToAddress(b []byte) Address {
	var a Address

	size := len(b)
	minSize := min(size, AddressLength)

	copy(a[AddressLength-minSize:], b[size-minSize:])

	return a
}

// StringToHash parses a possibly 0x-prefixed hex string into a hash
func StringToHash(str string) Hash {
	return BytesToHash(StringToBytes(str))
}

// StringToAddress parses a possibly 0x-prefixed hex string into an address
func StringToAddress(str string) Address {
	return BytesToAddress(StringToBytes(str))
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
