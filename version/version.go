package version

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/ayanami-desu/cipherkit/common"
	"github.com/ayanami-desu/cipherkit/constant"
	"github.com/ayanami-desu/cipherkit/option"
	"github.com/ayanami-desu/cipherkit/suite"
)

type versionOption struct {
	flag *bool
}

func (*versionOption) Name() string {
	return "version"
}

func (*versionOption) Priority() int {
	return 10
}

func (c *versionOption) Handle() error {
	if *c.flag {
		fmt.Println("cipherkit", constant.Version)
		fmt.Println("Go Version:", runtime.Version())
		fmt.Println("OS/Arch:", runtime.GOOS+"/"+runtime.GOARCH)
		fmt.Println("Git Commit:", constant.Commit)
		return nil
	}
	return common.NewError("not set")
}

type keygenOption struct {
	algorithm *string
}

func (*keygenOption) Name() string {
	return "KEYGEN"
}

func (*keygenOption) Priority() int {
	return 5
}

func (k *keygenOption) Handle() error {
	if *k.algorithm == "" {
		return common.NewError("not set")
	}
	key, err := suite.GenerateKey(*k.algorithm)
	if err != nil {
		return err
	}
	fmt.Printf("key for %s: %s\n", *k.algorithm, key.Hex())
	return nil
}

func init() {
	option.RegisterHandler(&versionOption{
		flag: flag.Bool("version", false, "Display version and help info"),
	})
	option.RegisterHandler(&keygenOption{
		algorithm: flag.String("keygen", "", "Generate a random key for the given algorithm (des, 3des, deal)"),
	})
}
