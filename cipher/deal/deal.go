package deal

import (
	"fmt"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/cipher/des"
	"github.com/ayanami-desu/cipherkit/common"
)

const (
	Name = "DEAL"

	BlockSize = 16

	numRounds = 6
)

// DEAL is a 6-round Feistel network over 128-bit blocks whose round
// function is DES keyed per round. Accepted key sizes are 16, 24 and
// 32 bytes.
//
// The subkey schedule below is not the published DEAL schedule; it is
// kept byte-for-byte compatible with the implementation this kit
// interoperates with.
type DEAL struct {
	keySize int
	rounds  [numRounds]*des.DES
	keyed   bool
}

// New builds an unkeyed DEAL instance. keySize is the expected key length
// in bytes and must be 16, 24 or 32; SetKey adopts the actual key length.
func New(keySize int) (*DEAL, error) {
	if !validKeySize(keySize) {
		return nil, fmt.Errorf("%w: DEAL key must be 16, 24 or 32 bytes, got %d",
			cipher.ErrInvalidKey, keySize)
	}
	d := &DEAL{keySize: keySize}
	for i := range d.rounds {
		d.rounds[i] = des.New()
	}
	return d, nil
}

func validKeySize(n int) bool {
	return n == 16 || n == 24 || n == 32
}

func (d *DEAL) Name() string {
	return fmt.Sprintf("%s-%d", Name, d.keySize*8)
}

func (d *DEAL) BlockSize() int {
	return BlockSize
}

func (d *DEAL) KeySize() int {
	return d.keySize
}

func (d *DEAL) SetKey(key cipher.Key) error {
	if !validKeySize(key.Size()) {
		return fmt.Errorf("%w: DEAL key must be 16, 24 or 32 bytes, got %d",
			cipher.ErrInvalidKey, key.Size())
	}
	d.keySize = key.Size()

	subkeys := scheduleSubkeys(key)
	for i := 0; i < numRounds; i++ {
		if err := d.rounds[i].SetKey(cipher.NewKey(subkeys[i][:])); err != nil {
			return err
		}
	}
	d.keyed = true
	return nil
}

// scheduleSubkeys partitions the key into 8-byte chunks. Subkeys within
// the first half of the key are direct copies; later ones reuse wrapped
// offsets into that half, each byte mixed with the salt i*0x11 + j*0x17.
func scheduleSubkeys(key cipher.Key) [numRounds][8]byte {
	var subkeys [numRounds][8]byte
	half := key.Size() / 2

	for i := 0; i < numRounds && i*8 < half; i++ {
		copy(subkeys[i][:], key[i*8:i*8+8])
	}
	for i := half / 8; i < numRounds; i++ {
		offset := (i * 8) % half
		copy(subkeys[i][:], key[offset:offset+8])
		for j := 0; j < 8; j++ {
			subkeys[i][j] ^= byte(i*0x11 + j*0x17)
		}
	}
	return subkeys
}

// IsValidKey additionally rejects keys whose bytes are all identical:
// every round would then receive a related subkey.
func (d *DEAL) IsValidKey(key cipher.Key) bool {
	return validKeySize(key.Size()) && !cipher.AllBytesEqual(key)
}

// EncryptBlock runs the rounds (L, R) -> (R, L xor DES_i(R)) and emits
// the halves without a final swap.
func (d *DEAL) EncryptBlock(dst, src []byte) error {
	if !d.keyed {
		return fmt.Errorf("%w: DEAL", cipher.ErrNotKeyed)
	}
	if err := cipher.CheckBlock(d, dst, src); err != nil {
		return err
	}

	var left, right, next [8]byte
	copy(left[:], src[0:8])
	copy(right[:], src[8:16])

	for round := 0; round < numRounds; round++ {
		if err := d.rounds[round].EncryptBlock(next[:], right[:]); err != nil {
			return err
		}
		common.XorBytesInPlace(next[:], left[:])
		left, right = right, next
	}

	copy(dst[0:8], left[:])
	copy(dst[8:16], right[:])
	return nil
}

// DecryptBlock walks the rounds backwards. The round function is DES
// encryption here too: only the network is inverted, not the function.
func (d *DEAL) DecryptBlock(dst, src []byte) error {
	if !d.keyed {
		return fmt.Errorf("%w: DEAL", cipher.ErrNotKeyed)
	}
	if err := cipher.CheckBlock(d, dst, src); err != nil {
		return err
	}

	var left, right, next [8]byte
	copy(left[:], src[0:8])
	copy(right[:], src[8:16])

	for round := numRounds - 1; round >= 0; round-- {
		if err := d.rounds[round].EncryptBlock(next[:], left[:]); err != nil {
			return err
		}
		common.XorBytesInPlace(next[:], right[:])
		left, right = next, left
	}

	copy(dst[0:8], left[:])
	copy(dst[8:16], right[:])
	return nil
}

func init() {
	cipher.RegisterCipherCreator(Name, func() cipher.BlockCipher {
		d, _ := New(16)
		return d
	})
}
