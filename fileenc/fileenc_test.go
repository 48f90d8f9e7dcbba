package fileenc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/cipher/des"
	"github.com/ayanami-desu/cipherkit/common"
	"github.com/ayanami-desu/cipherkit/mode"
	"github.com/ayanami-desu/cipherkit/padding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMode(t *testing.T, modeName string, pad padding.Padding) mode.Mode {
	t.Helper()
	d := des.New()
	require.NoError(t, d.SetKey(cipher.Key(common.MustRandomBytes(8))))
	m, err := mode.New(modeName, d, pad, common.MustRandomBytes(8))
	require.NoError(t, err)
	return m
}

func roundTripFile(t *testing.T, e *Encryptor, content []byte) {
	t.Helper()
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain")
	sealed := filepath.Join(dir, "sealed")
	restored := filepath.Join(dir, "restored")
	require.NoError(t, os.WriteFile(plain, content, 0o644))

	require.NoError(t, e.EncryptFile(plain, sealed))
	require.NoError(t, e.DecryptFile(sealed, restored))

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	if len(content) == 0 {
		assert.Empty(t, got)
	} else {
		assert.Equal(t, content, got)
	}

	if len(content) > 0 {
		enc, err := os.ReadFile(sealed)
		require.NoError(t, err)
		assert.NotEqual(t, content, enc)
	}
}

func TestFileRoundTripCBC(t *testing.T) {
	pad, err := padding.New("PKCS7")
	require.NoError(t, err)
	e := New(newMode(t, "CBC", pad), 2, 1024)
	defer e.Close()

	for _, size := range []int{0, 1, 1023, 1024, 1025, 4096, 10000} {
		roundTripFile(t, e, common.MustRandomBytes(size))
	}
}

func TestFileRoundTripCTRStream(t *testing.T) {
	e := New(newMode(t, "CTR", nil), 1, 4096)
	defer e.Close()

	roundTripFile(t, e, common.MustRandomBytes(3*4096+17))
}

func TestFileRoundTripZeroPadding(t *testing.T) {
	pad, err := padding.New("ZEROS")
	require.NoError(t, err)
	e := New(newMode(t, "ECB", pad), 1, 512)
	defer e.Close()

	// zero padding strips trailing zeros per record; keep every byte
	// non-zero so no record boundary can lose data
	content := common.MustRandomBytes(2000)
	for i := range content {
		content[i] |= 0x01
	}
	roundTripFile(t, e, content)
}

func TestAsync(t *testing.T) {
	pad, err := padding.New("PKCS7")
	require.NoError(t, err)
	e := New(newMode(t, "CBC", pad), 2, 0)
	defer e.Close()

	dir := t.TempDir()
	plain := filepath.Join(dir, "plain")
	sealed := filepath.Join(dir, "sealed")
	restored := filepath.Join(dir, "restored")
	content := common.MustRandomBytes(1 << 16)
	require.NoError(t, os.WriteFile(plain, content, 0o644))

	require.NoError(t, <-e.EncryptFileAsync(plain, sealed))
	require.NoError(t, <-e.DecryptFileAsync(sealed, restored))

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestMissingInput(t *testing.T) {
	e := New(newMode(t, "CTR", nil), 1, 0)
	defer e.Close()
	assert.Error(t, e.EncryptFile(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "out")))
}

func TestDecryptGarbage(t *testing.T) {
	e := New(newMode(t, "CBC", nil), 1, 0)
	defer e.Close()
	dir := t.TempDir()
	bogus := filepath.Join(dir, "bogus")
	require.NoError(t, os.WriteFile(bogus, []byte{0xff, 0xff}, 0o644))
	assert.Error(t, e.DecryptFile(bogus, filepath.Join(dir, "out")))
}

func TestPoolSubmitAfterClose(t *testing.T) {
	p := NewPool(1)
	done := make(chan struct{})
	require.NoError(t, p.Submit(func() { close(done) }))
	<-done
	p.Close()
	assert.Error(t, p.Submit(func() {}))
}
