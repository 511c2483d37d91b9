package internals

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
	"os"
)

type MD5 struct {
	h hash.Hash
}

func NewMD5() *MD5 {
	c := new(MD5)
	c.h = md5.New()
	return c
}

func (c *MD5) Size() int {
	return c.h.Size()
}

func (c *MD5) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

func (c *MD5) ReadFile(filepath string) (uint64, error) {
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

func (c *MD5) Reset() {
	c.h.Reset()
}

func (c *MD5) Sum() []byte {
	return c.h.Sum([]byte{})
}

func (c *MD5) HexSum() string {
	return hex.EncodeToString(c.Sum())
}

func (c *MD5) Name() string {
	return string(HashMD5)
}
