package padding

import "fmt"

// PKCS7Padding appends p copies of the byte value p, p in [1, blockSize].
type PKCS7Padding struct{}

func (*PKCS7Padding) Name() string {
	return "PKCS7"
}

func (*PKCS7Padding) Type() Type {
	return PKCS7
}

func (*PKCS7Padding) Pad(data []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, fmt.Errorf("PKCS7: %w", err)
	}
	p := padLength(len(data), blockSize)
	padded := make([]byte, len(data)+p)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(p)
	}
	return padded, nil
}

func (*PKCS7Padding) Unpad(data []byte) ([]byte, error) {
	p, err := readMarker("PKCS7", data)
	if err != nil {
		return nil, err
	}
	for i := len(data) - p; i < len(data); i++ {
		if data[i] != byte(p) {
			return nil, fmt.Errorf("%w: PKCS7: invalid padding bytes", ErrBadPadding)
		}
	}
	return data[:len(data)-p], nil
}

func (pp *PKCS7Padding) Validate(data []byte) bool {
	_, err := pp.Unpad(data)
	return err == nil
}
