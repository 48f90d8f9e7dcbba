package padding

import "fmt"

// ZeroPadding appends zero bytes up to the next block boundary and
// appends nothing when the input is already aligned. Unpad strips every
// trailing zero byte, so plaintexts ending in 0x00 do not survive the
// round trip; callers that may carry such data should pick a
// marker-carrying scheme instead.
type ZeroPadding struct{}

func (*ZeroPadding) Name() string {
	return "ZeroPadding"
}

func (*ZeroPadding) Type() Type {
	return Zeros
}

func (*ZeroPadding) Pad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, fmt.Errorf("ZeroPadding: %w", err)
	}
	p := blockSize - len(data)%blockSize
	if p == blockSize {
		p = 0
	}
	padded := make([]byte, len(data)+p)
	copy(padded, data)
	return padded, nil
}

func (*ZeroPadding) Unpad(data []byte) ([]byte, error) {
	end := len(data)
	for end > 0 && data[end-1] == 0 {
		end--
	}
	return data[:end], nil
}

func (*ZeroPadding) Validate(data []byte) bool {
	return true
}
