package padding

import (
	"bytes"
	"testing"

	"github.com/ayanami-desu/cipherkit/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allSchemes(t *testing.T) []Padding {
	t.Helper()
	var schemes []Padding
	for _, name := range []string{"ZEROS", "PKCS7", "ANSIX923", "ISO10126"} {
		p, err := New(name)
		require.NoError(t, err)
		schemes = append(schemes, p)
	}
	return schemes
}

func TestRoundTripAllSchemes(t *testing.T) {
	for _, scheme := range allSchemes(t) {
		for _, size := range []int{0, 1, 7, 8, 9, 15, 16, 17, 63, 64} {
			data := common.MustRandomBytes(size)
			// trailing zeros are lossy under ZeroPadding; keep them out
			if size > 0 {
				data[size-1] |= 0x01
			}
			padded, err := scheme.Pad(data, 8)
			require.NoError(t, err, "%s size %d", scheme.Name(), size)
			require.Zero(t, len(padded)%8, "%s size %d", scheme.Name(), size)

			unpadded, err := scheme.Unpad(padded)
			require.NoError(t, err, "%s size %d", scheme.Name(), size)
			assert.Equal(t, data, unpadded, "%s size %d", scheme.Name(), size)
		}
	}
}

func TestPadGrowsExceptZeros(t *testing.T) {
	for _, scheme := range allSchemes(t) {
		for _, size := range []int{0, 5, 8, 16} {
			data := common.MustRandomBytes(size)
			padded, err := scheme.Pad(data, 8)
			require.NoError(t, err)
			if scheme.Type() == Zeros {
				want := (size + 7) / 8 * 8
				assert.Len(t, padded, want, "%s size %d", scheme.Name(), size)
			} else {
				assert.Greater(t, len(padded), size, "%s size %d", scheme.Name(), size)
			}
		}
	}
}

func TestPKCS7FullBlock(t *testing.T) {
	// aligned input gets a whole extra block of 0x08
	data := []byte("ABCDEFGH")
	p := &PKCS7Padding{}
	padded, err := p.Pad(data, 8)
	require.NoError(t, err)
	require.Len(t, padded, 16)
	assert.Equal(t, data, padded[:8])
	assert.Equal(t, bytes.Repeat([]byte{0x08}, 8), padded[8:])

	unpadded, err := p.Unpad(padded)
	require.NoError(t, err)
	assert.Equal(t, data, unpadded)
}

func TestANSIX923Layout(t *testing.T) {
	p := &ANSIX923Padding{}
	padded, err := p.Pad([]byte{0xaa, 0xbb, 0xcc}, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0, 0, 0, 0, 0x05}, padded)
}

func TestISO10126Layout(t *testing.T) {
	p := &ISO10126Padding{}
	padded, err := p.Pad([]byte{0x01}, 8)
	require.NoError(t, err)
	require.Len(t, padded, 8)
	assert.Equal(t, byte(0x07), padded[7])
	// random filler is not validated on the way back
	unpadded, err := p.Unpad(padded)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, unpadded)
}

func TestZeroPaddingAlignedAppendsNothing(t *testing.T) {
	p := &ZeroPadding{}
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	padded, err := p.Pad(data, 8)
	require.NoError(t, err)
	assert.Equal(t, data, padded)
}

func TestZeroPaddingLossy(t *testing.T) {
	p := &ZeroPadding{}
	padded, err := p.Pad([]byte{0x01, 0x00}, 4)
	require.NoError(t, err)
	unpadded, err := p.Unpad(padded)
	require.NoError(t, err)
	// the plaintext's own trailing zero is gone
	assert.Equal(t, []byte{0x01}, unpadded)

	all, err := p.Unpad([]byte{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUnpadFailures(t *testing.T) {
	for _, scheme := range allSchemes(t) {
		if scheme.Type() == Zeros {
			continue
		}
		_, err := scheme.Unpad(nil)
		assert.ErrorIs(t, err, ErrBadPadding, "%s empty", scheme.Name())
		assert.False(t, scheme.Validate(nil))

		_, err = scheme.Unpad([]byte{0x11, 0x22, 0x00})
		assert.ErrorIs(t, err, ErrBadPadding, "%s zero marker", scheme.Name())

		_, err = scheme.Unpad([]byte{0x11, 0x22, 0x09})
		assert.ErrorIs(t, err, ErrBadPadding, "%s oversized marker", scheme.Name())
	}

	pkcs := &PKCS7Padding{}
	_, err := pkcs.Unpad([]byte{1, 2, 3, 4, 5, 6, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrBadPadding)

	ansi := &ANSIX923Padding{}
	_, err = ansi.Unpad([]byte{1, 2, 3, 4, 5, 0xff, 0x00, 0x03})
	assert.ErrorIs(t, err, ErrBadPadding)
}

func TestBlockSizeBounds(t *testing.T) {
	for _, scheme := range allSchemes(t) {
		for _, bad := range []int{0, -1, 256} {
			_, err := scheme.Pad([]byte{1}, bad)
			assert.ErrorIs(t, err, ErrBlockSize, "%s block %d", scheme.Name(), bad)
		}
		_, err := scheme.Pad([]byte{1}, 255)
		assert.NoError(t, err, scheme.Name())
	}
}

func TestFactory(t *testing.T) {
	for name, typ := range map[string]Type{
		"zeros": Zeros, "zero": Zeros,
		"pkcs7": PKCS7, "PKCS": PKCS7,
		"ansi_x923": ANSIX923, "ANSI": ANSIX923,
		"iso_10126": ISO10126, "iso": ISO10126,
	} {
		p, err := New(name)
		require.NoError(t, err, name)
		assert.Equal(t, typ, p.Type(), name)

		byType, err := NewByType(typ)
		require.NoError(t, err)
		assert.Equal(t, p.Name(), byType.Name())
	}

	_, err := New("base64")
	assert.Error(t, err)
	_, err = NewByType(Type(99))
	assert.Error(t, err)
}
