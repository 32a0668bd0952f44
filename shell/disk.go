package shell

import (
	"io"
	"os"
	"path/filepath"
)

// DiskFileSystem creates parent directories on demand so extraction never
// depends on archive entry ordering.
type DiskFileSystem struct{}

func NewDiskFileSystem() *DiskFileSystem {
	return &DiskFileSystem{}
}

func (this *DiskFileSystem) CreateDir(path string) error {
	return os.MkdirAll(path, 0755)
}

func (this *DiskFileSystem) CreateFile(path string) (io.WriteCloser, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, err
	}
	return os.Create(path)
}

func (this *DiskFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
