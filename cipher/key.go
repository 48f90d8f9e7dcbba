package cipher

import (
	"encoding/hex"
	"fmt"
)

// Key is raw symmetric key material. Treat it as immutable once built;
// every constructor hands out a private copy.
type Key []byte

// NewKey copies b into a fresh Key.
func NewKey(b []byte) Key {
	k := make(Key, len(b))
	copy(k, b)
	return k
}

// KeyFromHex parses lowercase or uppercase hex without separators.
// Odd-length input fails.
func KeyFromHex(s string) (Key, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: hex string must have even length", ErrInvalidKey)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return Key(b), nil
}

// Hex emits the key as lowercase hex, no separators.
func (k Key) Hex() string {
	return hex.EncodeToString(k)
}

func (k Key) Size() int {
	return len(k)
}

// String masks the key material in logs.
func (k Key) String() string {
	return fmt.Sprintf("Key(%d bytes)", len(k))
}
