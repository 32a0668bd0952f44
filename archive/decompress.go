package archive

import (
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/haitrungle/cargo-binstall/contracts"
)

func decompress(reader io.Reader, compression contracts.Compression) (io.ReadCloser, error) {
	switch compression {
	case contracts.CompressionBzip2:
		decompressed, err := bzip2.NewReader(reader, nil)
		return decompressed, err
	case contracts.CompressionGzip:
		return gzip.NewReader(reader)
	case contracts.CompressionXz:
		decompressed, err := xz.NewReader(reader)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(decompressed), nil
	case contracts.CompressionZstd:
		decompressed, err := zstd.NewReader(reader, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return decompressed.IOReadCloser(), nil
	default:
		return io.NopCloser(reader), nil
	}
}
