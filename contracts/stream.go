package contracts

import (
	"errors"
	"net/url"
)

// ChunkStream yields a remote body one chunk at a time, in wire order. Next
// returns io.EOF once terminally exhausted; a non-EOF error does not imply
// exhaustion. A yielded chunk is only valid until the next pull.
type ChunkStream interface {
	Next() ([]byte, error)
}

type Downloader interface {
	Download(address url.URL) (ChunkStream, error)
}

// RetryErr marks request-level failures worth retrying. Mid-stream failures
// are never retried.
var RetryErr = errors.New("retry")
