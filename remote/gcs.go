package remote

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/smartystreets/gcs"

	"github.com/haitrungle/cargo-binstall/contracts"
)

// GoogleCloudStorageClient fetches packages from a gs://bucket/resource
// address using signed requests.
type GoogleCloudStorageClient struct {
	client      *http.Client
	credentials gcs.Credentials
}

func NewGoogleCloudStorageClient(client *http.Client, credentials gcs.Credentials) *GoogleCloudStorageClient {
	return &GoogleCloudStorageClient{client: client, credentials: credentials}
}

func (this *GoogleCloudStorageClient) Download(address url.URL) (contracts.ChunkStream, error) {
	request, err := gcs.NewRequest("GET",
		gcs.WithCredentials(this.credentials),
		gcs.WithBucket(address.Host),
		gcs.WithResource(address.Path),
	)
	if err != nil {
		return nil, err
	}
	response, err := this.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", err, contracts.RetryErr)
	}
	if response.StatusCode != http.StatusOK {
		this.dump(request, response)
		_ = response.Body.Close()
		if response.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("unexpected status code: %s (%w)", response.Status, contracts.RetryErr)
		}
		return nil, fmt.Errorf("unexpected status code: %s", response.Status)
	}
	return newBodyStream(response.Body), nil
}

func (this *GoogleCloudStorageClient) dump(request *http.Request, response *http.Response) {
	requestDump, _ := httputil.DumpRequestOut(request, false)
	responseDump, _ := httputil.DumpResponse(response, true)
	log.Printf("unexpected status code: \nrequest: \n%s\nresponse:\n%s", requestDump, responseDump)
}
