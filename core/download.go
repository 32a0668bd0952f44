package core

import (
	"errors"
	"io"
	"net/url"

	"github.com/smartystreets/logging"

	"github.com/haitrungle/cargo-binstall/archive"
	"github.com/haitrungle/cargo-binstall/contracts"
)

// Download is a single fetch request, consumed by exactly one terminal
// operation (Extract or VisitTar).
type Download struct {
	client   contracts.Downloader
	address  url.URL
	verifier contracts.DataVerifier
	logger   *logging.Logger
}

func NewDownload(client contracts.Downloader, address url.URL) *Download {
	return &Download{client: client, address: address}
}

// NewDownloadWithVerifier attaches a verifier for the lifetime of this one
// request. The verifier must not be shared with another in-flight download.
func NewDownloadWithVerifier(client contracts.Downloader, address url.URL, verifier contracts.DataVerifier) *Download {
	return &Download{client: client, address: address, verifier: verifier}
}

// Extract downloads the package and extracts it beneath destination in a
// single pass, dispatching on the declared format. The ledger is only
// returned on success; files written before a failure remain on disk.
func (this *Download) Extract(
	format contracts.Format,
	destination string,
	filesystem contracts.ExtractionFileSystem,
) (*contracts.ExtractedFiles, error) {
	stream, err := this.stream()
	if err != nil {
		return nil, err
	}

	files := contracts.NewExtractedFiles()
	reader := newStreamReader(stream)

	class, compression := format.Decompose()
	switch class {
	case contracts.ClassTarBased:
		err = archive.ExtractTar(reader, compression, destination, filesystem, files)
	case contracts.ClassZip:
		err = archive.ExtractZip(reader, destination, filesystem, files)
	default:
		err = archive.ExtractBin(reader, destination, filesystem, files)
	}
	if err != nil {
		this.settle(stream)
		return nil, this.classify(err)
	}
	this.settle(stream)
	return files, nil
}

// VisitTar hands each entry to the visitor in archive order without touching
// the filesystem. The visitor may stop early, so a verifier attached in this
// mode is not guaranteed to observe the whole payload.
func (this *Download) VisitTar(compression contracts.Compression, visitor contracts.TarVisitor) error {
	stream, err := this.stream()
	if err != nil {
		return err
	}

	err = archive.VisitTar(newStreamReader(stream), compression, visitor)
	if err != nil {
		this.settle(stream)
		return this.classify(err)
	}
	return nil
}

func (this *Download) stream() (*verifyingStream, error) {
	source, err := this.client.Download(this.address)
	if err != nil {
		return nil, NewRemoteError(err)
	}
	return newVerifyingStream(source, this.verifier), nil
}

// settle pulls the remaining stream to exhaustion when a verifier is
// attached, so the digest covers the whole payload: trailing bytes the
// archive reader never requests, and everything after a failure. Drain
// errors are logged and discarded.
func (this *Download) settle(stream *verifyingStream) {
	if this.verifier == nil {
		return
	}
	for {
		_, err := stream.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			this.logger.Printf("[WARN] failed to consume remaining stream: %s", err)
		}
	}
}

func (this *Download) classify(err error) error {
	var zipFailure *archive.ZipError
	if errors.As(err, &zipFailure) {
		return NewUnzipError(zipFailure)
	}
	return FromIOError(err)
}
