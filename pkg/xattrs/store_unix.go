//go:build darwin || linux

// ABOUTME: Store backed by the host filesystem's extended attributes.
// ABOUTME: Uses the getxattr/setxattr family from golang.org/x/sys/unix.

package xattrs

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// FileStore reads and writes real extended attributes.
type FileStore struct{}

func NewFileStore() *FileStore {
	return &FileStore{}
}

func (FileStore) Get(path, key string) ([]byte, error) {
	for {
		size, err := unix.Getxattr(path, key, nil)
		if err != nil {
			return nil, wrapErr("get", path, key, err)
		}
		if size == 0 {
			return []byte{}, nil
		}

		buf := make([]byte, size)
		n, err := unix.Getxattr(path, key, buf)
		if errors.Is(err, unix.ERANGE) {
			// Value grew between the two calls
			continue
		}
		if err != nil {
			return nil, wrapErr("get", path, key, err)
		}
		return buf[:n], nil
	}
}

func (FileStore) Set(path, key string, value []byte) error {
	if err := unix.Setxattr(path, key, value, 0); err != nil {
		return wrapErr("set", path, key, err)
	}
	return nil
}

func (FileStore) Remove(path, key string) error {
	if err := unix.Removexattr(path, key); err != nil {
		return wrapErr("remove", path, key, err)
	}
	return nil
}

func (FileStore) List(path string) ([]string, error) {
	for {
		size, err := unix.Listxattr(path, nil)
		if err != nil {
			return nil, fmt.Errorf("list xattrs of %s: %w", path, err)
		}
		if size == 0 {
			return nil, nil
		}

		buf := make([]byte, size)
		n, err := unix.Listxattr(path, buf)
		if errors.Is(err, unix.ERANGE) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("list xattrs of %s: %w", path, err)
		}
		return splitNames(buf[:n]), nil
	}
}

// splitNames parses the NUL-terminated name list returned by listxattr.
func splitNames(buf []byte) []string {
	var names []string
	for _, b := range bytes.Split(buf, []byte{0}) {
		if len(b) > 0 {
			names = append(names, string(b))
		}
	}
	return names
}

func wrapErr(op, path, key string, err error) error {
	if errors.Is(err, errNoAttr) {
		return fmt.Errorf("%s xattr %s of %s: %w", op, key, path, ErrNoAttribute)
	}
	return fmt.Errorf("%s xattr %s of %s: %w", op, key, path, err)
}
