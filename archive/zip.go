package archive

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/haitrungle/cargo-binstall/contracts"
)

// ZipError marks a corrupt or truncated zip structure.
type ZipError struct {
	Cause error
}

func (this *ZipError) Error() string { return "corrupt zip archive: " + this.Cause.Error() }
func (this *ZipError) Unwrap() error { return this.Cause }

// ExtractZip buffers the whole stream to a temporary file, then indexes and
// extracts it beneath destination. The central directory lives at the end of
// the archive, so this strategy cannot stream.
func ExtractZip(
	stream io.Reader,
	destination string,
	filesystem contracts.ExtractionFileSystem,
	files *contracts.ExtractedFiles,
) error {
	buffered, size, err := bufferToTemp(stream)
	if err != nil {
		return err
	}
	defer func() {
		_ = buffered.Close()
		_ = os.Remove(buffered.Name())
	}()

	reader, err := zip.NewReader(buffered, size)
	if err != nil {
		return &ZipError{Cause: err}
	}

	files.RecordDir(".")
	for _, entry := range reader.File {
		if strings.HasSuffix(entry.Name, "/") || entry.Mode().IsDir() {
			relative, target, err := resolveEntryPath(destination, entry.Name)
			if err != nil {
				return err
			}
			if err = filesystem.CreateDir(target); err != nil {
				return err
			}
			files.RecordDir(relative)
			continue
		}
		if !entry.Mode().IsRegular() {
			continue
		}
		relative, target, err := resolveEntryPath(destination, entry.Name)
		if err != nil {
			return err
		}
		if err = writeZipEntry(filesystem, target, entry); err != nil {
			return err
		}
		files.RecordFile(relative)
	}
	return nil
}

// writeZipEntry keeps read-side failures (a corrupt entry) distinct from
// write-side filesystem failures.
func writeZipEntry(filesystem contracts.ExtractionFileSystem, target string, entry *zip.File) error {
	content, err := entry.Open()
	if err != nil {
		return &ZipError{Cause: err}
	}
	defer func() { _ = content.Close() }()

	writer, err := filesystem.CreateFile(target)
	if err != nil {
		return err
	}

	buffer := make([]byte, 32*1024)
	for {
		count, readErr := content.Read(buffer)
		if count > 0 {
			if _, writeErr := writer.Write(buffer[:count]); writeErr != nil {
				_ = writer.Close()
				return writeErr
			}
		}
		if readErr == io.EOF {
			return writer.Close()
		}
		if readErr != nil {
			_ = writer.Close()
			return &ZipError{Cause: readErr}
		}
	}
}

func bufferToTemp(stream io.Reader) (*os.File, int64, error) {
	file, err := os.CreateTemp("", "download-*.zip")
	if err != nil {
		return nil, 0, err
	}
	size, err := io.Copy(file, stream)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		return nil, 0, err
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		return nil, 0, err
	}
	return file, size, nil
}
