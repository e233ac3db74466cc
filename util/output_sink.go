package util

import (
	"io"
	"os"

	"building-query/config"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// FileOpener returns an opener that creates or truncates path when called.
func FileOpener(path string) func() (io.WriteCloser, error) {
	return func() (io.WriteCloser, error) {
		return os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.OUTPUT_FILE_MODE)
	}
}

// WriterOpener returns an opener for w that leaves w open on Close.
func WriterOpener(w io.Writer) func() (io.WriteCloser, error) {
	return func() (io.WriteCloser, error) {
		return nopWriteCloser{w}, nil
	}
}
