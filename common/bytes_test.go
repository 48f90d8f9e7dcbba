package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXorBytes(t *testing.T) {
	a := []byte{0x0f, 0xf0, 0xaa}
	b := []byte{0xff, 0xff, 0xaa}
	c := XorBytes(a, b)
	assert.Equal(t, []byte{0xf0, 0x0f, 0x00}, c)
	// inputs untouched
	assert.Equal(t, []byte{0x0f, 0xf0, 0xaa}, a)

	assert.Empty(t, XorBytes(nil, nil))
}

func TestXorBytesInPlace(t *testing.T) {
	target := []byte{0x01, 0x02, 0x03}
	XorBytesInPlace(target, []byte{0x01, 0x02, 0x03})
	assert.Equal(t, []byte{0, 0, 0}, target)

	target = []byte{0x12, 0x34}
	XorBytesInPlace(target, []byte{0xff, 0x00})
	assert.Equal(t, []byte{0xed, 0x34}, target)
}

func TestXorBytesInPlaceAliased(t *testing.T) {
	buf := []byte{0xde, 0xad, 0xbe, 0xef}
	XorBytesInPlace(buf, buf)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestXorBytesLengthMismatch(t *testing.T) {
	assert.Panics(t, func() { XorBytes([]byte{1}, []byte{1, 2}) })
	assert.Panics(t, func() { XorBytesInPlace([]byte{1}, []byte{1, 2}) })
}

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(16)
	require.NoError(t, err)
	b, err := RandomBytes(16)
	require.NoError(t, err)
	require.Len(t, a, 16)
	assert.NotEqual(t, a, b)

	empty, err := RandomBytes(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEndianRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	PutUint64BE(buf, 0x0123456789abcdef)
	assert.Equal(t, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, buf)
	assert.Equal(t, uint64(0x0123456789abcdef), Uint64BE(buf))

	PutUint32LE(buf[:4], 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf[:4])
	assert.Equal(t, uint32(0x01020304), Uint32LE(buf[:4]))
	PutUint16BE(buf[:2], 0xbeef)
	assert.Equal(t, uint16(0xbeef), Uint16BE(buf[:2]))
}
