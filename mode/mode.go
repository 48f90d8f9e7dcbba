package mode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/common"
	"github.com/ayanami-desu/cipherkit/padding"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrInvalidInput reports a length that the mode cannot process: data
	// that is not a block multiple for block-oriented modes with padding
	// disabled, an IV whose size does not match the cipher, or mismatched
	// raw buffers.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig reports an unknown mode tag.
	ErrInvalidConfig = errors.New("invalid mode config")
)

// Mode is a stateful data-in, data-out transformer built over a shared
// block cipher and an owned, optional padding scheme.
//
// Encrypt and Decrypt are the high-level entry points and apply padding
// when one is attached. EncryptRaw and DecryptRaw bypass padding for
// streaming use; on error the output buffer contents are unspecified and
// must be discarded.
//
// A Mode carries mutable chaining state and is not safe for concurrent
// use. The underlying cipher is shared and must not be re-keyed while a
// mode using it is mid-operation.
type Mode interface {
	Name() string

	// BlockSize is the underlying cipher's block size in bytes.
	BlockSize() int

	// UsesPadding reports whether a padding scheme is attached.
	UsesPadding() bool

	// SetIV replaces the initialization vector. The length must equal the
	// cipher's block size (CTR treats the IV as a nonce+counter composite
	// and accepts up to the block size).
	SetIV(iv []byte) error
	IV() []byte
	GenerateRandomIV() error

	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)

	EncryptRaw(dst, src []byte) error
	DecryptRaw(dst, src []byte) error

	// Reset rewinds streaming state (CFB feedback, OFB keystream, CTR
	// counter) to the point defined by the current IV. Modes that restart
	// from the IV on every call treat it as a no-op.
	Reset()
}

// Creator builds a mode over a keyed cipher and an optional padding.
type Creator func(c cipher.BlockCipher, p padding.Padding) (Mode, error)

var creators = make(map[string]Creator)

// RegisterModeCreator makes a mode constructible by name. Called from the
// package init functions below; names match case-insensitively.
func RegisterModeCreator(name string, creator Creator) {
	log.Debugf("registering cipher mode %s", name)
	creators[strings.ToUpper(name)] = creator
}

// New builds the named mode over the given cipher. padding may be nil for
// modes that tolerate arbitrary input lengths. When iv is nil the mode
// keeps the random IV generated at construction.
func New(name string, c cipher.BlockCipher, p padding.Padding, iv []byte) (Mode, error) {
	creator, ok := creators[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, name)
	}
	m, err := creator(c, p)
	if err != nil {
		return nil, err
	}
	if iv != nil {
		if err := m.SetIV(iv); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Modes lists every registered mode name.
func Modes() []string {
	names := make([]string, 0, len(creators))
	for name := range creators {
		names = append(names, name)
	}
	return names
}

// base carries the fields and plumbing every mode shares.
type base struct {
	cipher    cipher.BlockCipher
	padding   padding.Padding
	blockSize int
	iv        []byte
}

func newBase(c cipher.BlockCipher, p padding.Padding) (base, error) {
	if c == nil {
		return base{}, common.NewError("mode: cipher cannot be nil")
	}
	b := base{cipher: c, padding: p, blockSize: c.BlockSize()}
	if err := b.GenerateRandomIV(); err != nil {
		return base{}, err
	}
	return b, nil
}

func (b *base) BlockSize() int {
	return b.blockSize
}

func (b *base) UsesPadding() bool {
	return b.padding != nil
}

func (b *base) SetIV(iv []byte) error {
	if len(iv) != b.blockSize {
		return fmt.Errorf("%w: IV length %d does not match block size %d",
			ErrInvalidInput, len(iv), b.blockSize)
	}
	b.iv = append([]byte(nil), iv...)
	return nil
}

func (b *base) IV() []byte {
	return append([]byte(nil), b.iv...)
}

func (b *base) GenerateRandomIV() error {
	iv, err := common.RandomBytes(b.blockSize)
	if err != nil {
		return err
	}
	b.iv = iv
	return nil
}

func (b *base) checkRaw(dst, src []byte) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: output buffer length %d does not match input %d",
			ErrInvalidInput, len(dst), len(src))
	}
	return nil
}

func (b *base) checkMultiple(n int) error {
	if n%b.blockSize != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of block size %d",
			ErrInvalidInput, n, b.blockSize)
	}
	return nil
}

// encryptWith implements the high-level Encrypt path. strict marks the
// block-oriented modes, which reject unaligned input when no padding is
// attached.
func (b *base) encryptWith(raw func(dst, src []byte) error, plaintext []byte, strict bool) ([]byte, error) {
	data := plaintext
	if b.padding != nil {
		padded, err := b.padding.Pad(data, b.blockSize)
		if err != nil {
			return nil, err
		}
		data = padded
	} else if strict {
		if err := b.checkMultiple(len(data)); err != nil {
			return nil, err
		}
	}
	out := make([]byte, len(data))
	if err := raw(out, data); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *base) decryptWith(raw func(dst, src []byte) error, ciphertext []byte, strict bool) ([]byte, error) {
	if strict {
		if err := b.checkMultiple(len(ciphertext)); err != nil {
			return nil, err
		}
	}
	out := make([]byte, len(ciphertext))
	if err := raw(out, ciphertext); err != nil {
		return nil, err
	}
	if b.padding != nil {
		return b.padding.Unpad(out)
	}
	return out, nil
}
