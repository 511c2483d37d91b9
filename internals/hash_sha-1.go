package internals

import (
	"crypto/sha1"
	"encoding/hex"
	"hash"
	"io"
	"os"
)

type SHA1 struct {
	h hash.Hash
}

func NewSHA1() *SHA1 {
	c := new(SHA1)
	c.h = sha1.New()
	return c
}

func (c *SHA1) Size() int {
	return c.h.Size()
}

func (c *SHA1) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

func (c *SHA1) ReadFile(filepath string) (uint64, error) {
	// open/close file
	fd, err := os.Open(filepath)
	if err != nil {
		return 0, err
	}
	defer fd.Close()

	// read file
	n, err := io.Copy(c.h, fd)
	return uint64(n), err
}

func (c *SHA1) Reset() {
	c.h.Reset()
}

func (c *SHA1) Sum() []byte {
	return c.h.Sum([]byte{})
}

func (c *SHA1) HexSum() string {
	return hex.EncodeToString(c.Sum())
}

func (c *SHA1) Name() string {
	return string(HashSHA1)
}
