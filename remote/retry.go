package remote

import (
	"errors"
	"net/url"
	"time"

	"github.com/smartystreets/clock"
	"github.com/smartystreets/logging"

	"github.com/haitrungle/cargo-binstall/contracts"
)

// RetryDownloader retries the initial request on retryable failures.
// Failures after the stream has started are never retried.
type RetryDownloader struct {
	sleeper  *clock.Sleeper
	logger   *logging.Logger
	inner    contracts.Downloader
	maxRetry int
}

func NewRetryDownloader(inner contracts.Downloader, maxRetry int) *RetryDownloader {
	return &RetryDownloader{inner: inner, maxRetry: maxRetry}
}

func (this *RetryDownloader) Download(address url.URL) (stream contracts.ChunkStream, err error) {
	for x := 0; x <= this.maxRetry; x++ {
		stream, err = this.inner.Download(address)
		if err == nil {
			return stream, nil
		}
		if !errors.Is(err, contracts.RetryErr) {
			return nil, err
		}
		if x < this.maxRetry {
			this.logger.Println("[WARN] download failed, retry imminent.")
			this.sleeper.Sleep(time.Second * 3)
		}
	}
	return nil, err
}
