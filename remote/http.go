package remote

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/haitrungle/cargo-binstall/contracts"
)

type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient(client *http.Client) *HTTPClient {
	return &HTTPClient{client: client}
}

func (this *HTTPClient) Download(address url.URL) (contracts.ChunkStream, error) {
	response, err := this.client.Get(address.String())
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w (%w)", address.String(), err, contracts.RetryErr)
	}
	if response.StatusCode != http.StatusOK {
		_ = response.Body.Close()
		if response.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("GET %s: unexpected status: %s (%w)", address.String(), response.Status, contracts.RetryErr)
		}
		return nil, fmt.Errorf("GET %s: unexpected status: %s", address.String(), response.Status)
	}
	return newBodyStream(response.Body), nil
}

func NewDefaultTransportClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 1 * time.Second,
			}).DialContext,
			MaxIdleConns:          32,
			IdleConnTimeout:       32 * time.Second,
			TLSHandshakeTimeout:   16 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConnsPerHost:   -1,
			DisableKeepAlives:     true,
		},
	}
}
