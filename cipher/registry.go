package cipher

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Creator builds an unkeyed cipher instance.
type Creator func() BlockCipher

var creators = make(map[string]Creator)

// RegisterCipherCreator makes an algorithm constructible by name. Called
// from package init functions; names are matched case-insensitively.
func RegisterCipherCreator(name string, c Creator) {
	log.Debugf("registering cipher %s", name)
	creators[strings.ToUpper(name)] = c
}

// CreateCipher builds the named algorithm and keys it.
func CreateCipher(name string, key Key) (BlockCipher, error) {
	c, ok := creators[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("unknown cipher %q", name)
	}
	cipher := c()
	if err := cipher.SetKey(key); err != nil {
		return nil, err
	}
	return cipher, nil
}

// Algorithms lists every registered algorithm name.
func Algorithms() []string {
	names := make([]string, 0, len(creators))
	for name := range creators {
		names = append(names, name)
	}
	return names
}
