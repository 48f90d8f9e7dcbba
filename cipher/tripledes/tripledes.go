package tripledes

import (
	"fmt"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/cipher/des"
)

const (
	Name = "TripleDES"

	BlockSize = 8

	KeySize2 = 16 // two-key: k1 || k2, k3 := k1
	KeySize3 = 24
)

// Variant selects the composition order.
type Variant int

const (
	// EDE is the default composition: C = E_k3(D_k2(E_k1(P))).
	EDE Variant = iota
	// EEE chains three forward encryptions.
	EEE
)

// TripleDES composes three DES instances. The two-key form (EDE2,
// k3 = k1) is accepted but weaker than three independent keys.
type TripleDES struct {
	variant Variant
	des1    *des.DES
	des2    *des.DES
	des3    *des.DES
	twoKey  bool
	keyed   bool
}

func New(variant Variant) *TripleDES {
	return &TripleDES{
		variant: variant,
		des1:    des.New(),
		des2:    des.New(),
		des3:    des.New(),
	}
}

func (t *TripleDES) Name() string {
	if t.variant == EEE {
		return Name + "-EEE"
	}
	return Name + "-EDE"
}

func (t *TripleDES) BlockSize() int {
	return BlockSize
}

func (t *TripleDES) KeySize() int {
	if t.twoKey {
		return KeySize2
	}
	return KeySize3
}

func (t *TripleDES) SetKey(key cipher.Key) error {
	if key.Size() != KeySize2 && key.Size() != KeySize3 {
		return fmt.Errorf("%w: TripleDES requires a 16-byte or 24-byte key, got %d",
			cipher.ErrInvalidKey, key.Size())
	}
	t.twoKey = key.Size() == KeySize2

	k1 := cipher.NewKey(key[0:8])
	k2 := cipher.NewKey(key[8:16])
	k3 := k1
	if !t.twoKey {
		k3 = cipher.NewKey(key[16:24])
	}

	if err := t.des1.SetKey(k1); err != nil {
		return err
	}
	if err := t.des2.SetKey(k2); err != nil {
		return err
	}
	if err := t.des3.SetKey(k3); err != nil {
		return err
	}
	t.keyed = true
	return nil
}

// IsValidKey additionally rejects keys whose bytes are all identical,
// which would collapse the three stages into single DES.
func (t *TripleDES) IsValidKey(key cipher.Key) bool {
	if key.Size() != KeySize2 && key.Size() != KeySize3 {
		return false
	}
	return !cipher.AllBytesEqual(key)
}

func (t *TripleDES) EncryptBlock(dst, src []byte) error {
	if !t.keyed {
		return fmt.Errorf("%w: TripleDES", cipher.ErrNotKeyed)
	}
	if err := cipher.CheckBlock(t, dst, src); err != nil {
		return err
	}

	var tmp [BlockSize]byte
	switch t.variant {
	case EEE:
		if err := t.des1.EncryptBlock(tmp[:], src); err != nil {
			return err
		}
		if err := t.des2.EncryptBlock(tmp[:], tmp[:]); err != nil {
			return err
		}
		return t.des3.EncryptBlock(dst, tmp[:])
	default:
		if err := t.des1.EncryptBlock(tmp[:], src); err != nil {
			return err
		}
		if err := t.des2.DecryptBlock(tmp[:], tmp[:]); err != nil {
			return err
		}
		return t.des3.EncryptBlock(dst, tmp[:])
	}
}

func (t *TripleDES) DecryptBlock(dst, src []byte) error {
	if !t.keyed {
		return fmt.Errorf("%w: TripleDES", cipher.ErrNotKeyed)
	}
	if err := cipher.CheckBlock(t, dst, src); err != nil {
		return err
	}

	var tmp [BlockSize]byte
	switch t.variant {
	case EEE:
		if err := t.des3.DecryptBlock(tmp[:], src); err != nil {
			return err
		}
		if err := t.des2.DecryptBlock(tmp[:], tmp[:]); err != nil {
			return err
		}
		return t.des1.DecryptBlock(dst, tmp[:])
	default:
		if err := t.des3.DecryptBlock(tmp[:], src); err != nil {
			return err
		}
		if err := t.des2.EncryptBlock(tmp[:], tmp[:]); err != nil {
			return err
		}
		return t.des1.DecryptBlock(dst, tmp[:])
	}
}

func init() {
	cipher.RegisterCipherCreator(Name, func() cipher.BlockCipher {
		return New(EDE)
	})
}
