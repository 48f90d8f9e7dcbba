package build

// Pulls every algorithm into the binary through their registration side
// effects; modes and paddings register from their own packages.
import (
	_ "github.com/ayanami-desu/cipherkit/cipher/deal"
	_ "github.com/ayanami-desu/cipherkit/cipher/des"
	_ "github.com/ayanami-desu/cipherkit/cipher/tripledes"
	_ "github.com/ayanami-desu/cipherkit/mode"
)
