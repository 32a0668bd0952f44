package archive

import (
	"io"
	"path/filepath"

	"github.com/haitrungle/cargo-binstall/contracts"
)

// ExtractBin copies the stream verbatim to a single file at destination. The
// ledger records the file under its base name.
func ExtractBin(
	stream io.Reader,
	destination string,
	filesystem contracts.ExtractionFileSystem,
	files *contracts.ExtractedFiles,
) error {
	writer, err := filesystem.CreateFile(destination)
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, stream)
	closeErr := writer.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}
	files.RecordFile(filepath.Base(destination))
	return nil
}
