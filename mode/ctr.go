package mode

import (
	"fmt"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/common"
	"github.com/ayanami-desu/cipherkit/padding"
)

// CTR encrypts a nonce+counter composite and XORs the result with the
// data. The high half of the block is a random nonce; a 64-bit counter is
// serialized big-endian into the low bytes by OR-ing, which relies on the
// low half being zero after IV generation. The OR layout is kept for
// compatibility with ciphertexts produced by the original implementation.
//
// The counter survives across calls; Reset zeroes it and keeps the nonce.
type CTR struct {
	base
	nonce   []byte
	counter uint64
}

func NewCTR(c cipher.BlockCipher, p padding.Padding) (*CTR, error) {
	b, err := newBase(c, p)
	if err != nil {
		return nil, err
	}
	m := &CTR{base: b}
	if err := m.GenerateRandomIV(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *CTR) Name() string {
	return "CTR"
}

// SetIV accepts a nonce of up to one block and zero-extends it. A nonce of
// at most half a block leaves a zero low half for the counter; longer
// nonces are OR-ed with the counter bytes. The counter restarts at zero.
func (m *CTR) SetIV(iv []byte) error {
	if len(iv) > m.blockSize {
		return fmt.Errorf("%w: IV length %d exceeds block size %d",
			ErrInvalidInput, len(iv), m.blockSize)
	}
	m.nonce = make([]byte, m.blockSize)
	copy(m.nonce, iv)
	m.counter = 0
	return nil
}

func (m *CTR) IV() []byte {
	return append([]byte(nil), m.nonce...)
}

// GenerateRandomIV draws half a block of nonce and zero-fills the counter
// half.
func (m *CTR) GenerateRandomIV() error {
	half, err := common.RandomBytes(m.blockSize / 2)
	if err != nil {
		return err
	}
	m.nonce = make([]byte, m.blockSize)
	copy(m.nonce, half)
	m.counter = 0
	return nil
}

func (m *CTR) Encrypt(plaintext []byte) ([]byte, error) {
	return m.encryptWith(m.EncryptRaw, plaintext, false)
}

func (m *CTR) Decrypt(ciphertext []byte) ([]byte, error) {
	return m.decryptWith(m.DecryptRaw, ciphertext, false)
}

func (m *CTR) EncryptRaw(dst, src []byte) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}

	counterBlock := make([]byte, m.blockSize)
	keystream := make([]byte, m.blockSize)
	for processed := 0; processed < len(src); {
		m.fillCounterBlock(counterBlock)
		if err := m.cipher.EncryptBlock(keystream, counterBlock); err != nil {
			return err
		}

		n := m.blockSize
		if rest := len(src) - processed; rest < n {
			n = rest
		}
		for i := 0; i < n; i++ {
			dst[processed+i] = src[processed+i] ^ keystream[i]
		}
		processed += n
		m.increment()
	}
	return nil
}

func (m *CTR) DecryptRaw(dst, src []byte) error {
	return m.EncryptRaw(dst, src)
}

func (m *CTR) fillCounterBlock(block []byte) {
	copy(block, m.nonce)
	c := m.counter
	for i := 0; i < 8 && i < m.blockSize; i++ {
		block[m.blockSize-1-i] |= byte(c)
		c >>= 8
	}
}

// increment steps the 64-bit counter; on wraparound the carry is added
// into the stored IV block, bytes B-1 down to B/2 (its low half, under
// the OR-ed counter).
func (m *CTR) increment() {
	m.counter++
	if m.counter == 0 {
		for i := m.blockSize - 1; i >= m.blockSize/2; i-- {
			m.nonce[i]++
			if m.nonce[i] != 0 {
				break
			}
		}
	}
}

func (m *CTR) Reset() {
	m.counter = 0
}

func init() {
	RegisterModeCreator("CTR", func(c cipher.BlockCipher, p padding.Padding) (Mode, error) {
		return NewCTR(c, p)
	})
}
