package common

import (
	"crypto/rand"

	log "github.com/sirupsen/logrus"
)

// RandomBytes returns n unpredictable octets from the platform CSPRNG.
// IV generation and ISO 10126 filler both go through here.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		log.Errorf("random source failure: %v", err)
		return nil, NewError("random source unavailable").Base(err)
	}
	return b, nil
}

// MustRandomBytes is RandomBytes for callers that cannot meaningfully
// recover from an exhausted random source.
func MustRandomBytes(n int) []byte {
	b, err := RandomBytes(n)
	if err != nil {
		panic(err)
	}
	return b
}
