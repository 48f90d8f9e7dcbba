package padding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadPadding reports a structural violation found by Unpad.
	ErrBadPadding = errors.New("bad padding")

	// ErrBlockSize reports a block size outside [1, 255].
	ErrBlockSize = errors.New("padding block size must be between 1 and 255")
)

// Type tags the padding schemes known to the kit.
type Type int

const (
	Zeros Type = iota
	PKCS7
	ANSIX923
	ISO10126
)

// Padding extends data to a block multiple and reverses the extension.
// Implementations are pure and freely shareable between goroutines.
type Padding interface {
	Name() string
	Type() Type

	// Pad appends the scheme's filler so that the result is a multiple of
	// blockSize bytes. All schemes except Zeros always append at least one
	// byte, a full extra block when the input is already aligned.
	Pad(data []byte, blockSize int) ([]byte, error)

	// Unpad strips the filler appended by Pad. It fails with ErrBadPadding
	// on any structural violation (Zeros never fails, but is lossy for
	// plaintexts that end in zero bytes).
	Unpad(data []byte) ([]byte, error)

	// Validate reports whether Unpad would accept the data.
	Validate(data []byte) bool
}

// New builds a padding scheme from its name. Recognized names follow the
// configuration surface: ZEROS/ZERO, PKCS7/PKCS, ANSIX923/ANSI_X923/ANSI,
// ISO10126/ISO_10126/ISO, case-insensitive.
func New(name string) (Padding, error) {
	switch strings.ToUpper(name) {
	case "ZEROS", "ZERO", "ZEROPADDING":
		return &ZeroPadding{}, nil
	case "PKCS7", "PKCS":
		return &PKCS7Padding{}, nil
	case "ANSIX923", "ANSI_X923", "ANSI":
		return &ANSIX923Padding{}, nil
	case "ISO10126", "ISO_10126", "ISO":
		return &ISO10126Padding{}, nil
	}
	return nil, fmt.Errorf("unknown padding %q", name)
}

// NewByType builds a padding scheme from its tag.
func NewByType(t Type) (Padding, error) {
	switch t {
	case Zeros:
		return &ZeroPadding{}, nil
	case PKCS7:
		return &PKCS7Padding{}, nil
	case ANSIX923:
		return &ANSIX923Padding{}, nil
	case ISO10126:
		return &ISO10126Padding{}, nil
	}
	return nil, fmt.Errorf("unknown padding type %d", t)
}

func checkBlockSize(blockSize int) error {
	if blockSize < 1 || blockSize > 255 {
		return fmt.Errorf("%w, got %d", ErrBlockSize, blockSize)
	}
	return nil
}

// padLength is the filler size for the marker-carrying schemes: always in
// [1, blockSize], a whole block when the data is already aligned.
func padLength(dataLen, blockSize int) int {
	p := blockSize - dataLen%blockSize
	if p == 0 {
		p = blockSize
	}
	return p
}

// readMarker pulls the trailing length byte shared by PKCS7, ANSI X9.23
// and ISO 10126 and bounds-checks it.
func readMarker(scheme string, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: %s: cannot unpad empty data", ErrBadPadding, scheme)
	}
	p := int(data[len(data)-1])
	if p == 0 {
		return 0, fmt.Errorf("%w: %s: padding size cannot be zero", ErrBadPadding, scheme)
	}
	if p > len(data) {
		return 0, fmt.Errorf("%w: %s: padding size %d exceeds data size %d",
			ErrBadPadding, scheme, p, len(data))
	}
	return p, nil
}
