package contracts

import "fmt"

// Format identifies how a downloaded package is laid out on the wire.
type Format int

const (
	FormatTar Format = iota
	FormatTbz2
	FormatTgz
	FormatTxz
	FormatTzstd
	FormatZip
	FormatBin
)

// Compression is the streaming compressor wrapped around a tar container.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionBzip2
	CompressionGzip
	CompressionXz
	CompressionZstd
)

type FormatClass int

const (
	ClassTarBased FormatClass = iota
	ClassZip
	ClassBin
)

// Decompose classifies the format into one of the three extraction
// strategies. It is total over the declared formats; the compression value
// is only meaningful for ClassTarBased.
func (this Format) Decompose() (FormatClass, Compression) {
	switch this {
	case FormatTar:
		return ClassTarBased, CompressionNone
	case FormatTbz2:
		return ClassTarBased, CompressionBzip2
	case FormatTgz:
		return ClassTarBased, CompressionGzip
	case FormatTxz:
		return ClassTarBased, CompressionXz
	case FormatTzstd:
		return ClassTarBased, CompressionZstd
	case FormatZip:
		return ClassZip, CompressionNone
	default:
		return ClassBin, CompressionNone
	}
}

func (this Format) String() string {
	switch this {
	case FormatTar:
		return "tar"
	case FormatTbz2:
		return "tbz2"
	case FormatTgz:
		return "tgz"
	case FormatTxz:
		return "txz"
	case FormatTzstd:
		return "tzstd"
	case FormatZip:
		return "zip"
	default:
		return "bin"
	}
}

func ParseFormat(value string) (Format, error) {
	switch value {
	case "tar":
		return FormatTar, nil
	case "tbz2":
		return FormatTbz2, nil
	case "tgz", "tar.gz":
		return FormatTgz, nil
	case "txz", "tar.xz":
		return FormatTxz, nil
	case "tzstd", "tzst", "tar.zst":
		return FormatTzstd, nil
	case "zip":
		return FormatZip, nil
	case "bin":
		return FormatBin, nil
	default:
		return FormatBin, fmt.Errorf("unrecognized package format: %q", value)
	}
}
