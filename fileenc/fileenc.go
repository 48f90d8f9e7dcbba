// Package fileenc drives a configured mode over files, chunk by chunk,
// with optional asynchronous execution on a worker pool.
//
// On-disk layout: each plaintext chunk maps to one record of the form
// [4-byte big-endian length][ciphertext]. The length prefix makes the
// record boundaries independent of the padding scheme, so decryption
// replays exactly the chunking that encryption used. IV and algorithm
// configuration are not persisted; the caller supplies them, typically
// from a job config.
package fileenc

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/ayanami-desu/cipherkit/common"
	"github.com/ayanami-desu/cipherkit/mode"
	log "github.com/sirupsen/logrus"
)

// DefaultChunkSize is 1 MiB of plaintext per record.
const DefaultChunkSize = 1 << 20

// Encryptor moves files through a mode instance. The mode carries
// mutable chaining state, so file operations are serialized internally;
// the pool gives Async callers completion on a background goroutine.
type Encryptor struct {
	mode      mode.Mode
	chunkSize int
	pool      *Pool
	mu        sync.Mutex
}

// New builds an Encryptor over the given transformer. workers <= 0 uses
// the CPU count; chunkSize <= 0 uses DefaultChunkSize.
func New(m mode.Mode, workers, chunkSize int) *Encryptor {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Encryptor{
		mode:      m,
		chunkSize: chunkSize,
		pool:      NewPool(workers),
	}
}

// Close stops the worker pool after pending jobs complete.
func (e *Encryptor) Close() {
	e.pool.Close()
}

// EncryptFile encrypts inputFile into outputFile synchronously.
func (e *Encryptor) EncryptFile(inputFile, outputFile string) error {
	return e.processFile(inputFile, outputFile, true)
}

// DecryptFile reverses EncryptFile over the same configuration.
func (e *Encryptor) DecryptFile(inputFile, outputFile string) error {
	return e.processFile(inputFile, outputFile, false)
}

// EncryptFileAsync runs EncryptFile on the pool. The returned channel
// delivers the final error (or nil) exactly once.
func (e *Encryptor) EncryptFileAsync(inputFile, outputFile string) <-chan error {
	return e.async(inputFile, outputFile, true)
}

// DecryptFileAsync runs DecryptFile on the pool.
func (e *Encryptor) DecryptFileAsync(inputFile, outputFile string) <-chan error {
	return e.async(inputFile, outputFile, false)
}

func (e *Encryptor) async(inputFile, outputFile string, encrypting bool) <-chan error {
	result := make(chan error, 1)
	err := e.pool.Submit(func() {
		result <- e.processFile(inputFile, outputFile, encrypting)
	})
	if err != nil {
		result <- err
	}
	return result
}

func (e *Encryptor) processFile(inputFile, outputFile string, encrypting bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	input, err := os.Open(inputFile)
	if err != nil {
		return common.NewError("fileenc: cannot open input").Base(err)
	}
	defer input.Close()

	output, err := os.Create(outputFile)
	if err != nil {
		return common.NewError("fileenc: cannot create output").Base(err)
	}
	defer output.Close()

	e.mode.Reset()
	var processed int64
	if encrypting {
		processed, err = e.encryptStream(input, output)
	} else {
		processed, err = e.decryptStream(input, output)
	}
	if err != nil {
		return err
	}
	if err := output.Sync(); err != nil {
		return common.NewError("fileenc: flush failed").Base(err)
	}

	op := "decrypted"
	if encrypting {
		op = "encrypted"
	}
	log.Infof("%s %s -> %s, %d bytes in %v", op, inputFile, outputFile, processed, time.Since(start))
	return nil
}

func (e *Encryptor) encryptStream(r io.Reader, w io.Writer) (int64, error) {
	var total int64
	buf := make([]byte, e.chunkSize)
	lenPrefix := make([]byte, 4)
	for {
		n, err := io.ReadFull(r, buf)
		if err == io.EOF {
			return total, nil
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return total, common.NewError("fileenc: read failed").Base(err)
		}

		record, err2 := e.mode.Encrypt(buf[:n])
		if err2 != nil {
			return total, err2
		}
		common.PutUint32BE(lenPrefix, uint32(len(record)))
		if _, err2 = w.Write(lenPrefix); err2 != nil {
			return total, common.NewError("fileenc: write failed").Base(err2)
		}
		if _, err2 = w.Write(record); err2 != nil {
			return total, common.NewError("fileenc: write failed").Base(err2)
		}
		total += int64(n)

		if err == io.ErrUnexpectedEOF {
			return total, nil
		}
	}
}

func (e *Encryptor) decryptStream(r io.Reader, w io.Writer) (int64, error) {
	var total int64
	lenPrefix := make([]byte, 4)
	for {
		if _, err := io.ReadFull(r, lenPrefix); err != nil {
			if err == io.EOF {
				return total, nil
			}
			return total, common.NewError("fileenc: truncated record header").Base(err)
		}
		recordLen := common.Uint32BE(lenPrefix)
		record := make([]byte, recordLen)
		if _, err := io.ReadFull(r, record); err != nil {
			return total, common.NewError("fileenc: truncated record").Base(err)
		}

		plaintext, err := e.mode.Decrypt(record)
		if err != nil {
			return total, err
		}
		if _, err := w.Write(plaintext); err != nil {
			return total, common.NewError("fileenc: write failed").Base(err)
		}
		total += int64(len(plaintext))
	}
}
