package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// InMemoryFileSystem is an ExtractionFileSystem backed by maps, with
// per-path failure injection for tests.
type InMemoryFileSystem struct {
	files map[string]*file
	dirs  map[string]struct{}

	ErrCreateDir  map[string]error
	ErrCreateFile map[string]error
}

func NewInMemoryFileSystem() *InMemoryFileSystem {
	return &InMemoryFileSystem{
		files:         make(map[string]*file),
		dirs:          make(map[string]struct{}),
		ErrCreateDir:  make(map[string]error),
		ErrCreateFile: make(map[string]error),
	}
}

func (this *InMemoryFileSystem) CreateDir(path string) error {
	if err := this.ErrCreateDir[path]; err != nil {
		return err
	}
	for path != "." && path != string(os.PathSeparator) {
		this.dirs[path] = struct{}{}
		path = filepath.Dir(path)
	}
	return nil
}

func (this *InMemoryFileSystem) CreateFile(path string) (io.WriteCloser, error) {
	if err := this.ErrCreateFile[path]; err != nil {
		return nil, err
	}
	_ = this.CreateDir(filepath.Dir(path))
	created := &file{}
	this.files[path] = created
	return created, nil
}

func (this *InMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	target, found := this.files[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return target.contents.Bytes(), nil
}

func (this *InMemoryFileSystem) FileExists(path string) bool {
	_, found := this.files[path]
	return found
}

func (this *InMemoryFileSystem) DirExists(path string) bool {
	_, found := this.dirs[path]
	return found
}

func (this *InMemoryFileSystem) Listing() (paths []string) {
	for path := range this.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

///////////////////////////////////////////////////////////////////////////////

type file struct {
	contents bytes.Buffer
}

func (this *file) Write(p []byte) (int, error) { return this.contents.Write(p) }
func (this *file) Close() error                { return nil }
