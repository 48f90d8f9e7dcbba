package mode

import (
	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/common"
	"github.com/ayanami-desu/cipherkit/padding"
)

// CBC chains each plaintext block into the next encryption through the
// previous ciphertext block. Every Encrypt/Decrypt call restarts the
// chain from the configured IV.
type CBC struct {
	base
}

func NewCBC(c cipher.BlockCipher, p padding.Padding) (*CBC, error) {
	b, err := newBase(c, p)
	if err != nil {
		return nil, err
	}
	return &CBC{base: b}, nil
}

func (m *CBC) Name() string {
	return "CBC"
}

func (m *CBC) Encrypt(plaintext []byte) ([]byte, error) {
	return m.encryptWith(m.EncryptRaw, plaintext, true)
}

func (m *CBC) Decrypt(ciphertext []byte) ([]byte, error) {
	return m.decryptWith(m.DecryptRaw, ciphertext, true)
}

func (m *CBC) EncryptRaw(dst, src []byte) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}
	if err := m.checkMultiple(len(src)); err != nil {
		return err
	}

	prev := append([]byte(nil), m.iv...)
	xored := make([]byte, m.blockSize)
	for i := 0; i < len(src); i += m.blockSize {
		copy(xored, src[i:i+m.blockSize])
		common.XorBytesInPlace(xored, prev)
		if err := m.cipher.EncryptBlock(dst[i:i+m.blockSize], xored); err != nil {
			return err
		}
		copy(prev, dst[i:i+m.blockSize])
	}
	return nil
}

func (m *CBC) DecryptRaw(dst, src []byte) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}
	if err := m.checkMultiple(len(src)); err != nil {
		return err
	}

	prev := append([]byte(nil), m.iv...)
	cblock := make([]byte, m.blockSize)
	for i := 0; i < len(src); i += m.blockSize {
		// keep the ciphertext block: dst and src may alias
		copy(cblock, src[i:i+m.blockSize])
		if err := m.cipher.DecryptBlock(dst[i:i+m.blockSize], cblock); err != nil {
			return err
		}
		common.XorBytesInPlace(dst[i:i+m.blockSize], prev)
		prev, cblock = cblock, prev
	}
	return nil
}

func (m *CBC) Reset() {}

func init() {
	RegisterModeCreator("CBC", func(c cipher.BlockCipher, p padding.Padding) (Mode, error) {
		return NewCBC(c, p)
	})
}
