package mode

import (
	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/common"
	"github.com/ayanami-desu/cipherkit/padding"
)

// RandomDelta is a CBC variant that folds a per-block pseudo-random mask
// into both the pre-encryption XOR and the chaining update. The mask is
// derived deterministically from the IV and the block index by a
// linear-congruential step, so decryption regenerates it; it adds
// ciphertext diversity, not cryptographic strength. The derivation is
// pinned byte-for-byte for compatibility with existing ciphertexts.
//
// Like CBC, every call restarts the chain from the IV.
type RandomDelta struct {
	base
}

func NewRandomDelta(c cipher.BlockCipher, p padding.Padding) (*RandomDelta, error) {
	b, err := newBase(c, p)
	if err != nil {
		return nil, err
	}
	return &RandomDelta{base: b}, nil
}

func (m *RandomDelta) Name() string {
	return "RandomDelta"
}

func (m *RandomDelta) Encrypt(plaintext []byte) ([]byte, error) {
	return m.encryptWith(m.EncryptRaw, plaintext, true)
}

func (m *RandomDelta) Decrypt(ciphertext []byte) ([]byte, error) {
	return m.decryptWith(m.DecryptRaw, ciphertext, true)
}

// delta fills out with the mask for the given block index. Byte j seeds
// an LCG step with IV[j mod len(IV)] + index*256 + j and keeps the low
// byte of the advanced state.
func (m *RandomDelta) delta(out []byte, index int) {
	for j := range out {
		x := uint32(m.iv[j%len(m.iv)]) + uint32(index)*256 + uint32(j)
		x = (x*1103515245 + 12345) & 0x7fffffff
		out[j] = byte(x)
	}
}

func (m *RandomDelta) EncryptRaw(dst, src []byte) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}
	if err := m.checkMultiple(len(src)); err != nil {
		return err
	}

	prev := append([]byte(nil), m.iv...)
	delta := make([]byte, m.blockSize)
	xored := make([]byte, m.blockSize)
	for i, block := 0, 0; i < len(src); i, block = i+m.blockSize, block+1 {
		m.delta(delta, block)

		// masked IV for this block, then the usual CBC-style XOR
		copy(xored, src[i:i+m.blockSize])
		common.XorBytesInPlace(xored, prev)
		common.XorBytesInPlace(xored, delta)

		if err := m.cipher.EncryptBlock(dst[i:i+m.blockSize], xored); err != nil {
			return err
		}
		// the chain carries the delta-stripped ciphertext; the emitted
		// block carries the delta
		copy(prev, dst[i:i+m.blockSize])
		common.XorBytesInPlace(dst[i:i+m.blockSize], delta)
	}
	return nil
}

func (m *RandomDelta) DecryptRaw(dst, src []byte) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}
	if err := m.checkMultiple(len(src)); err != nil {
		return err
	}

	prev := append([]byte(nil), m.iv...)
	delta := make([]byte, m.blockSize)
	stripped := make([]byte, m.blockSize)
	for i, block := 0, 0; i < len(src); i, block = i+m.blockSize, block+1 {
		m.delta(delta, block)

		copy(stripped, src[i:i+m.blockSize])
		common.XorBytesInPlace(stripped, delta)

		if err := m.cipher.DecryptBlock(dst[i:i+m.blockSize], stripped); err != nil {
			return err
		}
		common.XorBytesInPlace(dst[i:i+m.blockSize], prev)
		common.XorBytesInPlace(dst[i:i+m.blockSize], delta)

		prev, stripped = stripped, prev
	}
	return nil
}

func (m *RandomDelta) Reset() {}

func init() {
	RegisterModeCreator("RandomDelta", func(c cipher.BlockCipher, p padding.Padding) (Mode, error) {
		return NewRandomDelta(c, p)
	})
}
