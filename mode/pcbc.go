package mode

import (
	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/common"
	"github.com/ayanami-desu/cipherkit/padding"
)

// PCBC mixes both the previous plaintext and the previous ciphertext into
// the chain, so a flipped ciphertext bit corrupts every later block. The
// first block chains against the IV and an all-zero ciphertext.
type PCBC struct {
	base
}

func NewPCBC(c cipher.BlockCipher, p padding.Padding) (*PCBC, error) {
	b, err := newBase(c, p)
	if err != nil {
		return nil, err
	}
	return &PCBC{base: b}, nil
}

func (m *PCBC) Name() string {
	return "PCBC"
}

func (m *PCBC) Encrypt(plaintext []byte) ([]byte, error) {
	return m.encryptWith(m.EncryptRaw, plaintext, true)
}

func (m *PCBC) Decrypt(ciphertext []byte) ([]byte, error) {
	return m.decryptWith(m.DecryptRaw, ciphertext, true)
}

func (m *PCBC) EncryptRaw(dst, src []byte) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}
	if err := m.checkMultiple(len(src)); err != nil {
		return err
	}

	prevPlain := append([]byte(nil), m.iv...)
	prevCipher := make([]byte, m.blockSize)
	xored := make([]byte, m.blockSize)
	for i := 0; i < len(src); i += m.blockSize {
		copy(xored, src[i:i+m.blockSize])
		common.XorBytesInPlace(xored, prevPlain)
		common.XorBytesInPlace(xored, prevCipher)

		copy(prevPlain, src[i:i+m.blockSize])
		if err := m.cipher.EncryptBlock(dst[i:i+m.blockSize], xored); err != nil {
			return err
		}
		copy(prevCipher, dst[i:i+m.blockSize])
	}
	return nil
}

func (m *PCBC) DecryptRaw(dst, src []byte) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}
	if err := m.checkMultiple(len(src)); err != nil {
		return err
	}

	prevPlain := append([]byte(nil), m.iv...)
	prevCipher := make([]byte, m.blockSize)
	cblock := make([]byte, m.blockSize)
	for i := 0; i < len(src); i += m.blockSize {
		copy(cblock, src[i:i+m.blockSize])
		if err := m.cipher.DecryptBlock(dst[i:i+m.blockSize], cblock); err != nil {
			return err
		}
		common.XorBytesInPlace(dst[i:i+m.blockSize], prevPlain)
		common.XorBytesInPlace(dst[i:i+m.blockSize], prevCipher)

		copy(prevPlain, dst[i:i+m.blockSize])
		copy(prevCipher, cblock)
	}
	return nil
}

func (m *PCBC) Reset() {}

func init() {
	RegisterModeCreator("PCBC", func(c cipher.BlockCipher, p padding.Padding) (Mode, error) {
		return NewPCBC(c, p)
	})
}
