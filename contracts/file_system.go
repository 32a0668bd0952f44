package contracts

import "io"

// ExtractionFileSystem is the surface the extraction strategies write
// through. Containment checks are the pipeline's responsibility.
type ExtractionFileSystem interface {
	CreateDir(path string) error
	CreateFile(path string) (io.WriteCloser, error)
}

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type Environment interface {
	LookupEnv(key string) (value string, set bool)
}
