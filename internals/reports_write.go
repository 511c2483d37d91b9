package internals

import (
	"fmt"
	"os"
	"time"
)

// Report writes digest result lines to a file or stdout
type Report struct {
	File     *os.File
	FilePath string
}

// NewReportWriter returns an freshly-initialized Report instance
func NewReportWriter(filepath string) (*Report, error) {
	report := new(Report)

	if filepath == "-" {
		report.File = os.Stdout
	} else {
		fd, err := os.Create(filepath)
		if err != nil {
			return report, err
		}
		report.File = fd
	}
	report.FilePath = filepath

	return report, nil
}

// HeadLine writes a headline to the report given the selection provided
func (r *Report) HeadLine(sel Selection) error {
	_, err := fmt.Fprintf(r.File, "# 1.0.0 %s %s\n",
		time.Now().UTC().Format("2006-01-02T15:04:05"),
		sel.String())
	return err
}

// TailLine writes a tailline to the report for one digest of one file
func (r *Report) TailLine(algo HashAlgo, hexDigest string, fileSize uint64, path string) error {
	_, err := fmt.Fprintf(r.File, "%s %s %d %s\n", hexDigest, algo, fileSize, path)
	return err
}

// Close releases the underlying file. Closing a stdout report is a no-op.
func (r *Report) Close() error {
	if r.FilePath == "-" {
		return nil
	}
	return r.File.Close()
}
