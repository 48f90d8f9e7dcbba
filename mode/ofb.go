package mode

import (
	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/padding"
)

// OFB iterates the cipher over the IV to produce a keystream that is
// independent of the data: S_1 = E(IV), S_i = E(S_i-1). The keystream
// position survives across calls; Reset rewinds to S_1. Encryption and
// decryption are the same XOR.
type OFB struct {
	base
	register  []byte
	keystream []byte
	pos       int
}

func NewOFB(c cipher.BlockCipher, p padding.Padding) (*OFB, error) {
	b, err := newBase(c, p)
	if err != nil {
		return nil, err
	}
	m := &OFB{base: b}
	m.rewind()
	return m, nil
}

func (m *OFB) Name() string {
	return "OFB"
}

func (m *OFB) rewind() {
	m.register = append([]byte(nil), m.iv...)
	m.keystream = make([]byte, m.blockSize)
	m.pos = m.blockSize
}

func (m *OFB) SetIV(iv []byte) error {
	if err := m.base.SetIV(iv); err != nil {
		return err
	}
	m.rewind()
	return nil
}

func (m *OFB) GenerateRandomIV() error {
	if err := m.base.GenerateRandomIV(); err != nil {
		return err
	}
	m.rewind()
	return nil
}

func (m *OFB) Encrypt(plaintext []byte) ([]byte, error) {
	return m.encryptWith(m.EncryptRaw, plaintext, false)
}

func (m *OFB) Decrypt(ciphertext []byte) ([]byte, error) {
	return m.decryptWith(m.DecryptRaw, ciphertext, false)
}

func (m *OFB) EncryptRaw(dst, src []byte) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}
	for i := range src {
		if m.pos == m.blockSize {
			if err := m.cipher.EncryptBlock(m.keystream, m.register); err != nil {
				return err
			}
			copy(m.register, m.keystream)
			m.pos = 0
		}
		dst[i] = src[i] ^ m.keystream[m.pos]
		m.pos++
	}
	return nil
}

func (m *OFB) DecryptRaw(dst, src []byte) error {
	return m.EncryptRaw(dst, src)
}

func (m *OFB) Reset() {
	m.rewind()
}

func init() {
	RegisterModeCreator("OFB", func(c cipher.BlockCipher, p padding.Padding) (Mode, error) {
		return NewOFB(c, p)
	})
}
