package padding

import "fmt"

// ANSIX923Padding appends p-1 zero bytes and a final byte carrying p.
type ANSIX923Padding struct{}

func (*ANSIX923Padding) Name() string {
	return "ANSI X9.23"
}

func (*ANSIX923Padding) Type() Type {
	return ANSIX923
}

func (*ANSIX923Padding) Pad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, fmt.Errorf("ANSI X9.23: %w", err)
	}
	p := padLength(len(data), blockSize)
	padded := make([]byte, len(data)+p)
	copy(padded, data)
	padded[len(padded)-1] = byte(p)
	return padded, nil
}

func (*ANSIX923Padding) Unpad(data []byte) ([]byte, error) {
	p, err := readMarker("ANSI X9.23", data)
	if err != nil {
		return nil, err
	}
	for i := len(data) - p; i < len(data)-1; i++ {
		if data[i] != 0 {
			return nil, fmt.Errorf("%w: ANSI X9.23: non-zero bytes in padding", ErrBadPadding)
		}
	}
	return data[:len(data)-p], nil
}

func (ap *ANSIX923Padding) Validate(data []byte) bool {
	_, err := ap.Unpad(data)
	return err == nil
}
