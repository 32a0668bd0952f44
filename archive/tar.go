package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/haitrungle/cargo-binstall/contracts"
)

// ExtractTar unpacks entries beneath destination as they arrive, without
// buffering the archive. Only regular files and directories materialize;
// sparse entries are written with their holes expanded to zero bytes.
func ExtractTar(
	stream io.Reader,
	compression contracts.Compression,
	destination string,
	filesystem contracts.ExtractionFileSystem,
	files *contracts.ExtractedFiles,
) error {
	decompressed, err := decompress(stream, compression)
	if err != nil {
		return err
	}
	defer func() { _ = decompressed.Close() }()

	files.RecordDir(".")
	reader := tar.NewReader(decompressed)
	for {
		header, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			relative, target, err := resolveEntryPath(destination, header.Name)
			if err != nil {
				return err
			}
			if err = filesystem.CreateDir(target); err != nil {
				return err
			}
			files.RecordDir(relative)
		case tar.TypeReg, tar.TypeGNUSparse:
			relative, target, err := resolveEntryPath(destination, header.Name)
			if err != nil {
				return err
			}
			if err = writeEntry(filesystem, target, reader); err != nil {
				return err
			}
			files.RecordFile(relative)
		default:
			// Symlinks, hard links, and special files never reach the
			// filesystem or the ledger.
		}
	}
}

// resolveEntryPath rejects any entry name that would resolve outside the
// destination.
func resolveEntryPath(destination, name string) (relative, target string, err error) {
	root := filepath.Clean(destination)
	target = filepath.Join(root, filepath.FromSlash(name))
	if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", "", fmt.Errorf("archive entry %q escapes the destination directory %q", name, destination)
	}
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", "", err
	}
	return filepath.ToSlash(rel), target, nil
}

func writeEntry(filesystem contracts.ExtractionFileSystem, target string, content io.Reader) error {
	writer, err := filesystem.CreateFile(target)
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, content)
	closeErr := writer.Close()
	if err != nil {
		return err
	}
	return closeErr
}
