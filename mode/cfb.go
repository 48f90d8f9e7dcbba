package mode

import (
	"fmt"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/padding"
)

// CFB turns the cipher into a self-synchronizing stream: each segment of
// keystream is the encryption of a feedback register that is refilled
// with ciphertext. The register survives across calls; Reset rewinds it
// to the IV. Padding is optional because the final segment is truncated.
type CFB struct {
	base
	segment  int
	feedback []byte
}

// NewCFB builds full-block CFB, the default segment size.
func NewCFB(c cipher.BlockCipher, p padding.Padding) (*CFB, error) {
	return NewCFBWithSegmentSize(c, p, 0)
}

// NewCFBWithSegmentSize selects the segment width in bits; it is rounded
// up to whole bytes. Zero or out-of-range values fall back to the block
// size.
func NewCFBWithSegmentSize(c cipher.BlockCipher, p padding.Padding, segmentBits int) (*CFB, error) {
	b, err := newBase(c, p)
	if err != nil {
		return nil, err
	}
	segment := b.blockSize
	if segmentBits > 0 && segmentBits <= b.blockSize*8 {
		segment = (segmentBits + 7) / 8
	}
	m := &CFB{base: b, segment: segment}
	m.feedback = append([]byte(nil), m.iv...)
	return m, nil
}

func (m *CFB) Name() string {
	if m.segment != m.blockSize {
		return fmt.Sprintf("CFB-%d", m.segment*8)
	}
	return "CFB"
}

func (m *CFB) SetIV(iv []byte) error {
	if err := m.base.SetIV(iv); err != nil {
		return err
	}
	m.feedback = append([]byte(nil), m.iv...)
	return nil
}

func (m *CFB) GenerateRandomIV() error {
	if err := m.base.GenerateRandomIV(); err != nil {
		return err
	}
	m.feedback = append([]byte(nil), m.iv...)
	return nil
}

func (m *CFB) Encrypt(plaintext []byte) ([]byte, error) {
	return m.encryptWith(m.EncryptRaw, plaintext, false)
}

func (m *CFB) Decrypt(ciphertext []byte) ([]byte, error) {
	return m.decryptWith(m.DecryptRaw, ciphertext, false)
}

func (m *CFB) EncryptRaw(dst, src []byte) error {
	return m.process(dst, src, true)
}

func (m *CFB) DecryptRaw(dst, src []byte) error {
	return m.process(dst, src, false)
}

func (m *CFB) process(dst, src []byte, encrypting bool) error {
	if err := m.checkRaw(dst, src); err != nil {
		return err
	}

	keystream := make([]byte, m.blockSize)
	seg := make([]byte, m.segment)
	for processed := 0; processed < len(src); {
		if err := m.cipher.EncryptBlock(keystream, m.feedback); err != nil {
			return err
		}

		n := m.segment
		if rest := len(src) - processed; rest < n {
			n = rest
		}
		if !encrypting {
			// keep the ciphertext segment: dst and src may alias
			copy(seg, src[processed:processed+n])
		}
		for i := 0; i < n; i++ {
			dst[processed+i] = src[processed+i] ^ keystream[i]
		}
		if encrypting {
			copy(seg, dst[processed:processed+n])
		}

		// the register shifts left by one segment and takes the ciphertext
		// just produced (or consumed); a truncated tail ends the stream, so
		// the register needs no update then
		if n == m.segment {
			copy(m.feedback, m.feedback[m.segment:])
			copy(m.feedback[m.blockSize-m.segment:], seg)
		}
		processed += n
	}
	return nil
}

func (m *CFB) Reset() {
	m.feedback = append([]byte(nil), m.iv...)
}

func init() {
	RegisterModeCreator("CFB", func(c cipher.BlockCipher, p padding.Padding) (Mode, error) {
		return NewCFB(c, p)
	})
}
