package des

import (
	"fmt"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/common"
)

const (
	Name = "DES"

	BlockSize = 8
	KeySize   = 8

	numRounds = 16
)

// DES is the FIPS 46-3 block cipher: 64-bit blocks, 64-bit keys of which
// 56 bits are effective and 8 are parity.
type DES struct {
	subkeys [numRounds]uint64
	keyed   bool
}

func New() *DES {
	return &DES{}
}

func (d *DES) Name() string {
	return Name
}

func (d *DES) BlockSize() int {
	return BlockSize
}

func (d *DES) KeySize() int {
	return KeySize
}

// SetKey expands the 16 round subkeys via PC-1, the left-rotate schedule
// and PC-2. Parity bits are not checked here; see ValidateStrongKey.
func (d *DES) SetKey(key cipher.Key) error {
	if key.Size() != KeySize {
		return fmt.Errorf("%w: DES requires %d-byte key, got %d", cipher.ErrInvalidKey, KeySize, key.Size())
	}
	key64 := common.Uint64BE(key)
	permuted := permute(pc1Table[:], key64, 64)

	left := uint32(permuted >> 28)
	right := uint32(permuted & 0xfffffff)

	for round := 0; round < numRounds; round++ {
		left = rotate28(left, shiftSchedule[round])
		right = rotate28(right, shiftSchedule[round])
		combined := uint64(left)<<28 | uint64(right)
		d.subkeys[round] = permute(pc2Table[:], combined, 56)
	}
	d.keyed = true
	return nil
}

// IsValidKey checks size only. Strong-key screening (parity, weak and
// semi-weak keys) is a separate opt-in utility.
func (d *DES) IsValidKey(key cipher.Key) bool {
	return key.Size() == KeySize
}

func (d *DES) EncryptBlock(dst, src []byte) error {
	return d.process(dst, src, false)
}

// DecryptBlock runs the same network with the subkeys in reverse order.
func (d *DES) DecryptBlock(dst, src []byte) error {
	return d.process(dst, src, true)
}

func (d *DES) process(dst, src []byte, reverse bool) error {
	if !d.keyed {
		return fmt.Errorf("%w: DES", cipher.ErrNotKeyed)
	}
	if err := cipher.CheckBlock(d, dst, src); err != nil {
		return err
	}

	block := permute(ipTable[:], common.Uint64BE(src), 64)
	left := uint32(block >> 32)
	right := uint32(block)

	for round := 0; round < numRounds; round++ {
		k := d.subkeys[round]
		if reverse {
			k = d.subkeys[numRounds-1-round]
		}
		left, right = right, left^feistel(right, k)
	}

	// final swap before the inverse permutation
	block = uint64(right)<<32 | uint64(left)
	common.PutUint64BE(dst, permute(fpTable[:], block, 64))
	return nil
}

// feistel is the DES round function F: expansion E, subkey XOR, the eight
// S-box substitutions packed into 32 bits, then permutation P.
func feistel(right uint32, subkey uint64) uint32 {
	expanded := permute(expansionTable[:], uint64(right), 32)
	expanded ^= subkey

	var substituted uint32
	for i := 0; i < 8; i++ {
		bits := byte(expanded>>(42-uint(i)*6)) & 0x3f
		row := (bits&0x20)>>4 | bits&0x01
		col := (bits >> 1) & 0x0f
		substituted = substituted<<4 | uint32(sBoxes[i][row][col])
	}

	return uint32(permute(pTable[:], uint64(substituted), 32))
}

// permute applies a 1-based bit-position table to the inputBits-wide value
// in input, treating table entry 1 as the MSB of the input.
func permute(table []byte, input uint64, inputBits uint) uint64 {
	var result uint64
	n := uint(len(table))
	for i, pos := range table {
		bit := (input >> (inputBits - uint(pos))) & 1
		result |= bit << (n - 1 - uint(i))
	}
	return result
}

func rotate28(v uint32, count uint) uint32 {
	return (v<<count | v>>(28-count)) & 0xfffffff
}

func init() {
	cipher.RegisterCipherCreator(Name, func() cipher.BlockCipher {
		return New()
	})
}
