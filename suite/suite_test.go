package suite

import (
	"errors"
	"testing"

	"github.com/ayanami-desu/cipherkit/cipher"
	"github.com/ayanami-desu/cipherkit/mode"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConfigParsing(t *testing.T) {
	Convey("A YAML config resolves into a transformer", t, func() {
		raw := []byte(`
algorithm: des
mode: cbc
padding: pkcs7
key: "0123456789abcdef"
iv: "0001020304050607"
`)
		cfg, err := ParseConfig(raw)
		So(err, ShouldBeNil)
		So(cfg.Algorithm, ShouldEqual, "des")

		m, err := New(cfg)
		So(err, ShouldBeNil)
		So(m.Name(), ShouldEqual, "CBC")
		So(m.IV(), ShouldResemble, []byte{0, 1, 2, 3, 4, 5, 6, 7})
	})
}

func TestAliases(t *testing.T) {
	Convey("Algorithm, mode and padding names accept their aliases", t, func() {
		key, err := GenerateKey("3des")
		So(err, ShouldBeNil)
		So(key.Size(), ShouldEqual, 24)

		for _, cfg := range []*Config{
			{Algorithm: "3DES", Mode: "random_delta", Padding: "ansi", Key: key.Hex()},
			{Algorithm: "TripleDES", Mode: "RANDOMDELTA", Padding: "ansix923", Key: key.Hex()},
			{Algorithm: "tripledes", Mode: "RandomDelta", Padding: "ANSI_X923", Key: key.Hex()},
		} {
			m, err := New(cfg)
			So(err, ShouldBeNil)
			So(m.Name(), ShouldEqual, "RandomDelta")
		}
	})
}

func TestInvalidConfigs(t *testing.T) {
	Convey("Unknown names fail with the config error", t, func() {
		key, _ := GenerateKey("DES")

		cases := []*Config{
			{Algorithm: "AES", Mode: "CBC", Padding: "PKCS7", Key: key.Hex()},
			{Algorithm: "DES", Mode: "XTS", Padding: "PKCS7", Key: key.Hex()},
			{Algorithm: "DES", Mode: "CBC", Padding: "BASE64", Key: key.Hex()},
		}
		for _, cfg := range cases {
			_, err := New(cfg)
			So(errors.Is(err, mode.ErrInvalidConfig), ShouldBeTrue)
		}

		Convey("and so does a missing or malformed key", func() {
			_, err := New(&Config{Algorithm: "DES", Mode: "CBC", Padding: "PKCS7"})
			So(errors.Is(err, mode.ErrInvalidConfig), ShouldBeTrue)

			_, err = New(&Config{Algorithm: "DES", Mode: "CBC", Padding: "PKCS7", Key: "abc"})
			So(errors.Is(err, cipher.ErrInvalidKey), ShouldBeTrue)

			_, err = New(&Config{Algorithm: "DES", Mode: "CBC", Padding: "PKCS7", Key: "00"})
			So(errors.Is(err, cipher.ErrInvalidKey), ShouldBeTrue)
		})
	})
}

func TestStringRoundTrip(t *testing.T) {
	Convey("Strings survive encrypt/decrypt for every algorithm", t, func() {
		for _, algorithm := range []string{"DES", "TRIPLEDES", "DEAL"} {
			key, err := GenerateKey(algorithm)
			So(err, ShouldBeNil)

			blockSize, err := BlockSize(algorithm)
			So(err, ShouldBeNil)
			iv := make([]byte, blockSize)
			for i := range iv {
				iv[i] = byte(i * 3)
			}

			cfg := &Config{
				Algorithm: algorithm,
				Mode:      "CBC",
				Padding:   "PKCS7",
				Key:       key.Hex(),
				IV:        cipher.Key(iv).Hex(),
			}

			ct, err := EncryptString(cfg, "attack at dawn")
			So(err, ShouldBeNil)

			pt, err := DecryptString(cfg, ct)
			So(err, ShouldBeNil)
			So(pt, ShouldEqual, "attack at dawn")
		}
	})
}

func TestSizeLookups(t *testing.T) {
	Convey("Key and block sizes follow the algorithm", t, func() {
		for algorithm, sizes := range map[string][2]int{
			"DES":       {8, 8},
			"TRIPLEDES": {24, 8},
			"DEAL":      {16, 16},
		} {
			keySize, err := KeySize(algorithm)
			So(err, ShouldBeNil)
			So(keySize, ShouldEqual, sizes[0])

			blockSize, err := BlockSize(algorithm)
			So(err, ShouldBeNil)
			So(blockSize, ShouldEqual, sizes[1])
		}

		_, err := KeySize("RC4")
		So(err, ShouldNotBeNil)
	})
}

func TestValidConfig(t *testing.T) {
	Convey("ValidConfig mirrors the parsers", t, func() {
		So(ValidConfig("DES", "CBC", "PKCS7"), ShouldBeTrue)
		So(ValidConfig("deal", "ctr", ""), ShouldBeTrue)
		So(ValidConfig("AES", "CBC", "PKCS7"), ShouldBeFalse)
		So(ValidConfig("DES", "GCM", "PKCS7"), ShouldBeFalse)
		So(ValidConfig("DES", "CBC", "BITPAD"), ShouldBeFalse)
	})
}
