package mode

import (
	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/padding"
)

// ECB encrypts every block independently. It uses no IV; the IV methods
// are kept as no-ops so the mode satisfies the common contract.
type ECB struct {
	base
}

func NewECB(c cipher.BlockCipher, p padding.Padding) (*ECB, error) {
	b, err := newBase(c, p)
	if err != nil {
		return nil, err
	}
	b.iv = nil
	return &ECB{base: b}, nil
}

func (m *ECB) Name() string {
	return "ECB"
}

func (m *ECB) SetIV([]byte) error {
	return nil
}

func (m *ECB) IV() []byte {
	return nil
}

func (m *ECB) GenerateRandomIV() error {
	return nil
}

func (m *ECB) Encrypt(plaintext []byte) ([]byte, error) {
	return m.encryptWith(m.EncryptRaw, plaintext, true)
}

func (m *ECB) Decrypt(ciphertext []byte) ([]byte, error) {
	return m.decryptWith(m.DecryptRaw, ciphertext, true)
}

func (m *ECB) EncryptRaw(dst, src []byte) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}
	if err := m.checkMultiple(len(src)); err != nil {
		return err
	}
	for i := 0; i < len(src); i += m.blockSize {
		if err := m.cipher.EncryptBlock(dst[i:i+m.blockSize], src[i:i+m.blockSize]); err != nil {
			return err
		}
	}
	return nil
}

func (m *ECB) DecryptRaw(dst, src []byte) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}
	if err := m.checkMultiple(len(src)); err != nil {
		return err
	}
	for i := 0; i < len(src); i += m.blockSize {
		if err := m.cipher.DecryptBlock(dst[i:i+m.blockSize], src[i:i+m.blockSize]); err != nil {
			return err
		}
	}
	return nil
}

func (m *ECB) Reset() {}

func init() {
	RegisterModeCreator("ECB", func(c cipher.BlockCipher, p padding.Padding) (Mode, error) {
		return NewECB(c, p)
	})
}
