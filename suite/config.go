package suite

import (
	"fmt"
	"strings"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/mode"
	"gopkg.in/yaml.v3"
)

// Config names a complete transformer: algorithm, mode and padding by
// their textual names, key and IV as hex. Padding may be empty for the
// stream-like modes; IV may be empty to use a random one.
type Config struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Mode      string `json:"mode" yaml:"mode"`
	Padding   string `json:"padding" yaml:"padding"`
	Key       string `json:"key" yaml:"key"`
	IV        string `json:"iv" yaml:"iv"`
}

// ParseConfig reads a Config from YAML (JSON is valid YAML).
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", mode.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// parseAlgorithm canonicalizes an algorithm name to its registry key.
func parseAlgorithm(name string) (string, error) {
	switch strings.ToUpper(name) {
	case "DES":
		return "DES", nil
	case "TRIPLEDES", "3DES", "TRIPLEDES-EDE", "TRIPLEDES-EEE":
		return "TRIPLEDES", nil
	case "DEAL":
		return "DEAL", nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", mode.ErrInvalidConfig, name)
}

// parseMode canonicalizes a mode name, folding the underscore alias.
func parseMode(name string) (string, error) {
	switch strings.ToUpper(name) {
	case "ECB", "CBC", "PCBC", "CFB", "OFB", "CTR":
		return strings.ToUpper(name), nil
	case "RANDOMDELTA", "RANDOM_DELTA":
		return "RANDOMDELTA", nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", mode.ErrInvalidConfig, name)
}

// keySizes mirrors the default key material drawn per algorithm.
var keySizes = map[string]int{
	"DES":       8,
	"TRIPLEDES": 24,
	"DEAL":      16,
}

var blockSizes = map[string]int{
	"DES":       8,
	"TRIPLEDES": 8,
	"DEAL":      16,
}

// KeySize returns the default key size in bytes for the named algorithm.
func KeySize(algorithm string) (int, error) {
	canonical, err := parseAlgorithm(algorithm)
	if err != nil {
		return 0, err
	}
	return keySizes[canonical], nil
}

// BlockSize returns the block size in bytes for the named algorithm.
func BlockSize(algorithm string) (int, error) {
	canonical, err := parseAlgorithm(algorithm)
	if err != nil {
		return 0, err
	}
	return blockSizes[canonical], nil
}

// ValidConfig reports whether the three names resolve. An empty padding
// is acceptable (no padding attached).
func ValidConfig(algorithm, modeName, paddingName string) bool {
	if _, err := parseAlgorithm(algorithm); err != nil {
		return false
	}
	if _, err := parseMode(modeName); err != nil {
		return false
	}
	if paddingName == "" {
		return true
	}
	_, err := parsePadding(paddingName)
	return err == nil
}

func (c *Config) key() (cipher.Key, error) {
	if c.Key == "" {
		return nil, fmt.Errorf("%w: key is required", mode.ErrInvalidConfig)
	}
	return cipher.KeyFromHex(c.Key)
}

func (c *Config) iv() ([]byte, error) {
	if c.IV == "" {
		return nil, nil
	}
	k, err := cipher.KeyFromHex(c.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: bad iv", mode.ErrInvalidConfig)
	}
	return []byte(k), nil
}
