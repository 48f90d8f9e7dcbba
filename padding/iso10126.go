package padding

import (
	"fmt"

	"github.com/ayanami-desu/cipherkit/common"
)

// ISO10126Padding appends p-1 random bytes and a final byte carrying p.
// Unpad trusts the marker and does not inspect the random filler.
type ISO10126Padding struct{}

func (*ISO10126Padding) Name() string {
	return "ISO 10126"
}

func (*ISO10126Padding) Type() Type {
	return ISO10126
}

func (*ISO10126Padding) Pad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, fmt.Errorf("ISO 10126: %w", err)
	}
	p := padLength(len(data), blockSize)
	filler, err := common.RandomBytes(p - 1)
	if err != nil {
		return nil, err
	}
	padded := make([]byte, 0, len(data)+p)
	padded = append(padded, data...)
	padded = append(padded, filler...)
	padded = append(padded, byte(p))
	return padded, nil
}

func (*ISO10126Padding) Unpad(data []byte) ([]byte, error) {
	p, err := readMarker("ISO 10126", data)
	if err != nil {
		return nil, err
	}
	return data[:len(data)-p], nil
}

func (ip *ISO10126Padding) Validate(data []byte) bool {
	_, err := ip.Unpad(data)
	return err == nil
}
