// Package suite assembles ciphers, modes and paddings from textual names
// into ready-to-use transformers.
package suite

import (
	"fmt"

	"github.com/ayanami-desu/cipherkit/cipher"
	_ "github.com/ayanami-desu/cipherkit/cipher/deal"
	_ "github.com/ayanami-desu/cipherkit/cipher/des"
	_ "github.com/ayanami-desu/cipherkit/cipher/tripledes"
	"github.com/ayanami-desu/cipherkit/common"
	"github.com/ayanami-desu/cipherkit/mode"
	"github.com/ayanami-desu/cipherkit/padding"
	log "github.com/sirupsen/logrus"
)

func parsePadding(name string) (padding.Padding, error) {
	p, err := padding.New(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mode.ErrInvalidConfig, err)
	}
	return p, nil
}

// New builds the transformer a Config describes. The cipher is keyed, the
// padding (if any) attached, and the IV applied when the config carries
// one; otherwise the mode keeps its random IV.
func New(cfg *Config) (mode.Mode, error) {
	algorithm, err := parseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	modeName, err := parseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	var pad padding.Padding
	if cfg.Padding != "" {
		if pad, err = parsePadding(cfg.Padding); err != nil {
			return nil, err
		}
	}

	key, err := cfg.key()
	if err != nil {
		return nil, err
	}
	blockCipher, err := cipher.CreateCipher(algorithm, key)
	if err != nil {
		return nil, err
	}

	iv, err := cfg.iv()
	if err != nil {
		return nil, err
	}

	log.Debugf("building %s/%s transformer, padding %q", algorithm, modeName, cfg.Padding)
	return mode.New(modeName, blockCipher, pad, iv)
}

// GenerateKey draws random key material of the algorithm's default size.
func GenerateKey(algorithm string) (cipher.Key, error) {
	size, err := KeySize(algorithm)
	if err != nil {
		return nil, err
	}
	b, err := common.RandomBytes(size)
	if err != nil {
		return nil, err
	}
	return cipher.Key(b), nil
}

// Encrypt is the one-shot form: build the transformer and run it once.
func Encrypt(cfg *Config, plaintext []byte) ([]byte, error) {
	m, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return m.Encrypt(plaintext)
}

// Decrypt is the one-shot inverse of Encrypt. The config must carry the
// IV the ciphertext was produced with.
func Decrypt(cfg *Config, ciphertext []byte) ([]byte, error) {
	m, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return m.Decrypt(ciphertext)
}

// EncryptString and DecryptString move text through the byte interface.
func EncryptString(cfg *Config, plaintext string) ([]byte, error) {
	return Encrypt(cfg, []byte(plaintext))
}

func DecryptString(cfg *Config, ciphertext []byte) (string, error) {
	plaintext, err := Decrypt(cfg, ciphertext)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
