package hex

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"
)

const (
	// Base is the hexadecimal base
	Base = 16

	// BitSize64 is the number of bits in a uint64
	BitSize64 = 64
)

// EncodeToHex generates a hex string based on the byte representation, with the '0x' prefix
func EncodeToHex(str []byte) string {
	return "0x" + hex.EncodeToString(str)
}

// EncodeToString is a wrapper method for hex.EncodeToString
func EncodeToString(str []byte) string {
	return hex.EncodeToString(str)
}

// DecodeHex converts a hex string to a byte array
func DecodeHex(str string) ([]byte, error) {
	str = strings.TrimPrefix(str, "0x")

	if len(str)%2 == 1 {
		str = "0" + str
	}

	return hex.DecodeString(str)
}

// DecodeUint64 type-checks and converts a hex string to a uint64
func DecodeUint64(str string) (uint64, error) {
	str = strings.TrimPrefix(str, "0x")

	return strconv.ParseUint(str, Base, BitSize64)
}

// EncodeUint64 encodes a number as a hex string with the '0x' prefix
func EncodeUint64(i uint64) string {
	enc := make([]byte, 2, 10)
	copy(enc, "0x")

	return string(strconv.AppendUint(enc, i, Base))
}

// EncodeBig encodes a big.Int as a hex string with the '0x' prefix
func EncodeBig(b *big.Int) string {
	return "0x" + b.Text(Base)
}
