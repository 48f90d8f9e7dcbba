package cipher

import "errors"

// Errors shared by every block cipher in the kit. Implementations wrap
// them with fmt.Errorf("%w: ...") so callers can match with errors.Is.
var (
	// ErrInvalidKey reports a key of the wrong size or one rejected by an
	// algorithm's key validator.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNotKeyed reports a block operation invoked before SetKey.
	ErrNotKeyed = errors.New("cipher not keyed")

	// ErrInvalidBlockSize reports a block buffer whose length does not
	// match the cipher's block size.
	ErrInvalidBlockSize = errors.New("invalid block size")
)

// BlockCipher is a keyed permutation on fixed-size blocks.
//
// A BlockCipher starts unkeyed; EncryptBlock and DecryptBlock fail with
// ErrNotKeyed until a SetKey call succeeds. After that the key schedule is
// read-only, so concurrent block operations on one instance are safe as
// long as nobody re-keys it in parallel.
type BlockCipher interface {
	Name() string
	BlockSize() int
	KeySize() int

	// SetKey validates the key and expands the round schedule. Calling it
	// again replaces the schedule.
	SetKey(key Key) error

	// IsValidKey reports whether the key would be accepted by this
	// algorithm's strength validator. It can be stricter than SetKey.
	IsValidKey(key Key) bool

	// EncryptBlock and DecryptBlock transform exactly one block from src
	// into dst. Both buffers must be BlockSize() bytes; they may alias.
	EncryptBlock(dst, src []byte) error
	DecryptBlock(dst, src []byte) error
}

// CheckBlock validates a dst/src pair against the cipher's block size.
func CheckBlock(c BlockCipher, dst, src []byte) error {
	if len(src) != c.BlockSize() || len(dst) != c.BlockSize() {
		return ErrInvalidBlockSize
	}
	return nil
}

// AllBytesEqual reports whether every byte of b has the same value.
// Degenerate keys of this shape are rejected by the composite-cipher
// validators.
func AllBytesEqual(b []byte) bool {
	for i := 1; i < len(b); i++ {
		if b[i] != b[0] {
			return false
		}
	}
	return true
}
