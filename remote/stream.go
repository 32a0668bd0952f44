package remote

import "io"

const chunkSize = 64 * 1024

// bodyStream yields a response body as a chunk stream. A read failure is
// yielded once, then the body is closed and the stream is terminally
// exhausted.
type bodyStream struct {
	body    io.ReadCloser
	buffer  []byte
	pending error
	done    bool
}

func newBodyStream(body io.ReadCloser) *bodyStream {
	return &bodyStream{body: body, buffer: make([]byte, chunkSize)}
}

func (this *bodyStream) Next() ([]byte, error) {
	if this.done {
		return nil, io.EOF
	}
	if this.pending != nil {
		return nil, this.finish(this.pending)
	}
	count, err := this.body.Read(this.buffer)
	if count > 0 {
		if err != nil {
			this.pending = err
		}
		return this.buffer[:count], nil
	}
	return nil, this.finish(err)
}

func (this *bodyStream) finish(err error) error {
	this.done = true
	_ = this.body.Close()
	if err == nil || err == io.EOF {
		return io.EOF
	}
	return err
}
