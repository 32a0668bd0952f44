package archive

import (
	"archive/tar"
	"errors"
	"io"
	"path"

	"github.com/haitrungle/cargo-binstall/contracts"
)

// VisitTar hands each entry to the visitor in archive order. The entry
// reader is only valid until the visitor returns.
func VisitTar(stream io.Reader, compression contracts.Compression, visitor contracts.TarVisitor) error {
	decompressed, err := decompress(stream, compression)
	if err != nil {
		return err
	}
	defer func() { _ = decompressed.Close() }()

	reader := tar.NewReader(decompressed)
	for {
		header, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		err = visitor.Visit(contracts.TarEntry{
			Type:   entryType(header.Typeflag),
			Path:   path.Clean(header.Name),
			Size:   header.Size,
			Reader: reader,
		})
		if errors.Is(err, contracts.SkipRemaining) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func entryType(typeflag byte) contracts.TarEntryType {
	switch typeflag {
	case tar.TypeReg, tar.TypeGNUSparse:
		return contracts.TarEntryFile
	case tar.TypeDir:
		return contracts.TarEntryDir
	case tar.TypeSymlink:
		return contracts.TarEntrySymlink
	default:
		return contracts.TarEntryOther
	}
}
