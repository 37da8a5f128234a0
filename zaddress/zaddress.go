// Package zaddress converts Zilliqa addresses between the 3 encodings that
// cross the registry/resolver boundary: raw 0x hex (contract storage),
// bech32 with the "zil" prefix (display) and checksummed hex (explorers).
package zaddress

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// Bech32HRP is the human readable prefix of Zilliqa bech32 addresses.
	Bech32HRP = "zil"

	// AddressLength is the byte length of a Zilliqa account or contract
	// address.
	AddressLength = 20
)

var ErrMalformedAddress = errors.New("malformed address")

// ZeroAddress is the null address the registry stores for unclaimed or
// resolver-less records.
var ZeroAddress = "0x" + strings.Repeat("0", AddressLength*2)

// normalizeHex strips an optional 0x prefix and validates that the rest is
// exactly 40 hex digits. It returns the bare lowercase form.
func normalizeHex(addr string) (string, error) {
	bare := strings.TrimPrefix(strings.TrimPrefix(addr, "0x"), "0X")
	if len(bare) != AddressLength*2 {
		return "", fmt.Errorf("%w: %s has %d hex digits, want %d", ErrMalformedAddress, addr, len(bare), AddressLength*2)
	}
	bare = strings.ToLower(bare)
	if _, err := hex.DecodeString(bare); err != nil {
		return "", fmt.Errorf("%w: %s is not hex: %s", ErrMalformedAddress, addr, err)
	}
	return bare, nil
}

// IsHex reports whether addr is a well formed hex address, with or without
// the 0x prefix.
func IsHex(addr string) bool {
	_, err := normalizeHex(addr)
	return err == nil
}

// IsBech32 reports whether addr is a well formed zil1... address.
func IsBech32(addr string) bool {
	_, err := FromBech32(addr)
	return err == nil
}

// IsZero reports whether addr is the null address in any hex form. A bech32
// address is never considered zero since the registry stores nulls in hex.
func IsZero(addr string) bool {
	bare, err := normalizeHex(addr)
	if err != nil {
		return addr == ""
	}
	return bare == strings.Repeat("0", AddressLength*2)
}

// ToBech32 converts a hex address to its zil1... display form.
func ToBech32(hexAddr string) (string, error) {
	bare, err := normalizeHex(hexAddr)
	if err != nil {
		return "", err
	}
	raw, _ := hex.DecodeString(bare)
	conv, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrMalformedAddress, hexAddr, err)
	}
	encoded, err := bech32.Encode(Bech32HRP, conv)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrMalformedAddress, hexAddr, err)
	}
	return encoded, nil
}

// FromBech32 converts a zil1... address back to its 0x hex form.
func FromBech32(addr string) (string, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrMalformedAddress, addr, err)
	}
	if hrp != Bech32HRP {
		return "", fmt.Errorf("%w: %s has prefix %q, want %q", ErrMalformedAddress, addr, hrp, Bech32HRP)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrMalformedAddress, addr, err)
	}
	if len(raw) != AddressLength {
		return "", fmt.Errorf("%w: %s decodes to %d bytes, want %d", ErrMalformedAddress, addr, len(raw), AddressLength)
	}
	return "0x" + hex.EncodeToString(raw), nil
}

// ToChecksum converts a hex address to Zilliqa's checksummed form: a hex
// letter is uppercased iff bit (255 - 6*i) of sha256(address bytes) is set,
// i being the digit position. Note this is NOT the EIP-55 scheme, the two
// chains' checksummed forms are mutually invalid.
func ToChecksum(hexAddr string) (string, error) {
	bare, err := normalizeHex(hexAddr)
	if err != nil {
		return "", err
	}
	raw, _ := hex.DecodeString(bare)
	digest := sha256.Sum256(raw)

	out := make([]byte, 0, len(bare))
	for i := 0; i < len(bare); i++ {
		c := bare[i]
		if c >= 'a' && c <= 'f' {
			bit := uint(255 - 6*i)
			if digest[31-bit/8]>>(bit%8)&1 == 1 {
				c = c - 'a' + 'A'
			}
		}
		out = append(out, c)
	}
	return "0x" + string(out), nil
}

// ToCanonical normalizes a bech32 or hex address to the bare lowercase
// 40-digit form the Zilliqa JSON-RPC API keys contracts by.
func ToCanonical(addr string) (string, error) {
	if strings.HasPrefix(addr, Bech32HRP+"1") {
		hexAddr, err := FromBech32(addr)
		if err != nil {
			return "", err
		}
		return strings.TrimPrefix(hexAddr, "0x"), nil
	}
	return normalizeHex(addr)
}
