package contracts

import (
	"errors"
	"io"
)

type TarEntryType int

const (
	TarEntryFile TarEntryType = iota
	TarEntryDir
	TarEntrySymlink
	TarEntryOther
)

// TarEntry is one entry of a tar archive as it streams past. Reader is only
// valid until the visitor returns.
type TarEntry struct {
	Type   TarEntryType
	Path   string
	Size   int64
	Reader io.Reader
}

// SkipRemaining may be returned from Visit to stop the walk without failing
// the download.
var SkipRemaining = errors.New("skip remaining tar entries")

type TarVisitor interface {
	Visit(entry TarEntry) error
}

type TarVisitorFunc func(entry TarEntry) error

func (this TarVisitorFunc) Visit(entry TarEntry) error { return this(entry) }
