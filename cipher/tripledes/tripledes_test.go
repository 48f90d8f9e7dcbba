package tripledes

import (
	"encoding/hex"
	"testing"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/cipher/des"
	"github.com/ayanami-desu/cipherkit/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// EDE with a three-key must equal E_k3(D_k2(E_k1(p))) computed from three
// independent DES instances.
func TestEDEComposition(t *testing.T) {
	key := mustHex(t, "0123456789abcdef23456789abcdef01456789abcdef0123")
	plaintext := mustHex(t, "5468652071756663")

	tdes := New(EDE)
	require.NoError(t, tdes.SetKey(cipher.NewKey(key)))
	got := make([]byte, BlockSize)
	require.NoError(t, tdes.EncryptBlock(got, plaintext))

	d1, d2, d3 := des.New(), des.New(), des.New()
	require.NoError(t, d1.SetKey(cipher.NewKey(key[0:8])))
	require.NoError(t, d2.SetKey(cipher.NewKey(key[8:16])))
	require.NoError(t, d3.SetKey(cipher.NewKey(key[16:24])))

	want := make([]byte, BlockSize)
	require.NoError(t, d1.EncryptBlock(want, plaintext))
	require.NoError(t, d2.DecryptBlock(want, want))
	require.NoError(t, d3.EncryptBlock(want, want))
	assert.Equal(t, want, got)

	back := make([]byte, BlockSize)
	require.NoError(t, tdes.DecryptBlock(back, got))
	assert.Equal(t, plaintext, back)
}

// Two-key EDE2 sets k3 = k1, so it must agree with the 24-byte key built
// as k1 || k2 || k1.
func TestTwoKeyEquivalence(t *testing.T) {
	k1 := common.MustRandomBytes(8)
	k2 := common.MustRandomBytes(8)
	src := common.MustRandomBytes(BlockSize)

	short := New(EDE)
	require.NoError(t, short.SetKey(cipher.NewKey(append(append([]byte{}, k1...), k2...))))
	long := New(EDE)
	full := append(append(append([]byte{}, k1...), k2...), k1...)
	require.NoError(t, long.SetKey(cipher.NewKey(full)))

	out1 := make([]byte, BlockSize)
	out2 := make([]byte, BlockSize)
	require.NoError(t, short.EncryptBlock(out1, src))
	require.NoError(t, long.EncryptBlock(out2, src))
	assert.Equal(t, out1, out2)
	assert.Equal(t, KeySize2, short.KeySize())
	assert.Equal(t, KeySize3, long.KeySize())
}

func TestEEERoundTrip(t *testing.T) {
	tdes := New(EEE)
	require.NoError(t, tdes.SetKey(cipher.Key(common.MustRandomBytes(KeySize3))))
	assert.Equal(t, "TripleDES-EEE", tdes.Name())

	src := common.MustRandomBytes(BlockSize)
	enc := make([]byte, BlockSize)
	dec := make([]byte, BlockSize)
	require.NoError(t, tdes.EncryptBlock(enc, src))
	require.NoError(t, tdes.DecryptBlock(dec, enc))
	assert.Equal(t, src, dec)
	assert.NotEqual(t, src, enc)
}

func TestKeySizeRejection(t *testing.T) {
	tdes := New(EDE)
	for _, n := range []int{0, 8, 15, 17, 23, 25, 32} {
		assert.ErrorIs(t, tdes.SetKey(cipher.NewKey(make([]byte, n))), cipher.ErrInvalidKey, "size %d", n)
	}
}

func TestValidator(t *testing.T) {
	tdes := New(EDE)
	assert.False(t, tdes.IsValidKey(cipher.NewKey(make([]byte, 8))))

	allSame := make([]byte, KeySize3)
	for i := range allSame {
		allSame[i] = 0x42
	}
	assert.False(t, tdes.IsValidKey(cipher.NewKey(allSame)))
	assert.True(t, tdes.IsValidKey(cipher.Key(common.MustRandomBytes(KeySize2))))
}

func TestNotKeyed(t *testing.T) {
	tdes := New(EDE)
	buf := make([]byte, BlockSize)
	assert.ErrorIs(t, tdes.EncryptBlock(buf, buf), cipher.ErrNotKeyed)
	assert.ErrorIs(t, tdes.DecryptBlock(buf, buf), cipher.ErrNotKeyed)
}
