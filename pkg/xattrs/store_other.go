//go:build !darwin && !linux

// ABOUTME: Fallback Store for systems without extended attributes.
// ABOUTME: Every operation fails with ErrUnsupported.

package xattrs

// FileStore reports ErrUnsupported for every operation on this platform.
type FileStore struct{}

func NewFileStore() *FileStore {
	return &FileStore{}
}

func (FileStore) Get(path, key string) ([]byte, error)      { return nil, ErrUnsupported }
func (FileStore) Set(path, key string, value []byte) error { return ErrUnsupported }
func (FileStore) Remove(path, key string) error            { return ErrUnsupported }
func (FileStore) List(path string) ([]string, error)       { return nil, ErrUnsupported }
