package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ayanami-desu/cipherkit/common"
	_ "github.com/ayanami-desu/cipherkit/component"
	"github.com/ayanami-desu/cipherkit/fileenc"
	"github.com/ayanami-desu/cipherkit/option"
	"github.com/ayanami-desu/cipherkit/suite"
	_ "github.com/ayanami-desu/cipherkit/version"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// jobConfig describes one file encryption or decryption job.
type jobConfig struct {
	suite.Config `yaml:",inline"`

	Operation string `json:"operation" yaml:"operation"`
	Input     string `json:"input" yaml:"input"`
	Output    string `json:"output" yaml:"output"`
	Threads   int    `json:"threads" yaml:"threads"`
	ChunkSize int    `json:"chunk-size" yaml:"chunk-size"`
}

type jobOption struct {
	path *string
}

func (*jobOption) Name() string {
	return "job"
}

func (*jobOption) Priority() int {
	return 0
}

func (o *jobOption) Handle() error {
	if *o.path == "" {
		return common.NewError("not set")
	}
	if err := runJob(*o.path); err != nil {
		log.Fatalf("job failed: %v", err)
	}
	return nil
}

func runJob(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return common.NewError("cannot read job config").Base(err)
	}
	job := &jobConfig{}
	if err := yaml.Unmarshal(data, job); err != nil {
		return common.NewError("cannot parse job config").Base(err)
	}

	if job.Key == "" {
		key, err := promptKey()
		if err != nil {
			return err
		}
		job.Key = key
	}

	m, err := suite.New(&job.Config)
	if err != nil {
		return err
	}
	if job.IV == "" {
		log.Warnf("no iv in job config, using a random one: %x", m.IV())
	}

	e := fileenc.New(m, job.Threads, job.ChunkSize)
	defer e.Close()

	switch strings.ToLower(job.Operation) {
	case "encrypt", "":
		return e.EncryptFile(job.Input, job.Output)
	case "decrypt":
		return e.DecryptFile(job.Input, job.Output)
	}
	return common.NewError("unknown operation " + job.Operation)
}

// promptKey asks for hex key material without echoing it. A job without
// a key is only runnable interactively.
func promptKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", common.NewError("key missing from job config and stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, "key (hex): ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", common.NewError("cannot read key").Base(err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func main() {
	flag.Parse()
	for {
		h, err := option.PopOptionHandler()
		if err != nil {
			log.Fatal("invalid options")
		}
		err = h.Handle()
		if err == nil {
			break
		}
	}
}

func init() {
	option.RegisterHandler(&jobOption{
		path: flag.String("config", "", "Run the file encryption job described by the YAML config"),
	})
}
