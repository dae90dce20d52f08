package pkg

import (
	"errors"
	"fmt"
	"os"
	"unsafe"
)

// BytesToString views buf as a string without copying; buf must not be modified afterwards.
func BytesToString(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// EnsureDir creates path (with parents) when missing and fails if something
// other than a directory already lives there.
func EnsureDir(path string, perm os.FileMode) error {
	stat, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return os.MkdirAll(path, perm)
	case err != nil:
		return err
	case !stat.IsDir():
		return fmt.Errorf("%s exists and is not a directory", path)
	}
	return nil
}
