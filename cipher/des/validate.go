package des

import (
	"fmt"
	"math/bits"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/common"
)

// Strong-key screening. SetKey deliberately does not enforce any of this;
// callers that care run ValidateStrongKey before keying.

// The published weak and semi-weak keys. Comparison masks the parity bit
// of every byte, so each entry stands for all 256 parity variants.
var weakKeys = [4]uint64{
	0x0101010101010101,
	0xfefefefefefefefe,
	0xe0e0e0e0f1f1f1f1,
	0x1f1f1f1f0e0e0e0e,
}

var semiWeakKeys = [12]uint64{
	0x01fe01fe01fe01fe, 0xfe01fe01fe01fe01,
	0x1fe01fe00ef10ef1, 0xe01fe01ff10ef10e,
	0x01e001e001f101f1, 0xe001e001f101f101,
	0x1ffe1ffe0efe0efe, 0xfe1ffe1ffe0efe0e,
	0x011f011f010e010e, 0x1f011f010e010e01,
	0xe0fee0fef1fef1fe, 0xfee0fee0fef1fef1,
}

const parityMask = 0xfefefefefefefefe

// HasOddParity reports whether every byte of the key has an odd number of
// one bits, as FIPS 46-3 requires of the parity bits.
func HasOddParity(key cipher.Key) bool {
	for _, b := range key {
		if bits.OnesCount8(b)%2 == 0 {
			return false
		}
	}
	return true
}

// IsWeakKey reports whether the key is one of the four keys for which
// encryption and decryption coincide. Parity bits are ignored.
func IsWeakKey(key cipher.Key) bool {
	if key.Size() != KeySize {
		return false
	}
	masked := common.Uint64BE(key) & parityMask
	for _, w := range weakKeys {
		if masked == w&parityMask {
			return true
		}
	}
	return false
}

// IsSemiWeakKey reports whether the key belongs to one of the six
// semi-weak pairs. Parity bits are ignored.
func IsSemiWeakKey(key cipher.Key) bool {
	if key.Size() != KeySize {
		return false
	}
	masked := common.Uint64BE(key) & parityMask
	for _, w := range semiWeakKeys {
		if masked == w&parityMask {
			return true
		}
	}
	return false
}

// ValidateStrongKey rejects keys of the wrong size, keys with a byte of
// even parity, and the weak/semi-weak keys.
func ValidateStrongKey(key cipher.Key) error {
	if key.Size() != KeySize {
		return fmt.Errorf("%w: DES requires %d-byte key, got %d", cipher.ErrInvalidKey, KeySize, key.Size())
	}
	if !HasOddParity(key) {
		return fmt.Errorf("%w: DES key fails odd-parity check", cipher.ErrInvalidKey)
	}
	if IsWeakKey(key) {
		return fmt.Errorf("%w: DES key is a known weak key", cipher.ErrInvalidKey)
	}
	if IsSemiWeakKey(key) {
		return fmt.Errorf("%w: DES key is a known semi-weak key", cipher.ErrInvalidKey)
	}
	return nil
}

// FixParity returns a copy of the key with every byte's low bit adjusted
// to odd parity, the usual way of deriving a DES key from 56 random bits.
func FixParity(key cipher.Key) cipher.Key {
	fixed := cipher.NewKey(key)
	for i, b := range fixed {
		if bits.OnesCount8(b)%2 == 0 {
			fixed[i] = b ^ 0x01
		}
	}
	return fixed
}
