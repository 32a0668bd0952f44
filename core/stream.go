package core

import (
	"io"

	"github.com/haitrungle/cargo-binstall/contracts"
)

// verifyingStream feeds every successfully pulled chunk to the verifier
// before yielding it; failed pulls bypass the verifier. Fused: after io.EOF
// the source is never re-entered.
type verifyingStream struct {
	source    contracts.ChunkStream
	verifier  contracts.DataVerifier
	exhausted bool
}

func newVerifyingStream(source contracts.ChunkStream, verifier contracts.DataVerifier) *verifyingStream {
	return &verifyingStream{source: source, verifier: verifier}
}

func (this *verifyingStream) Next() ([]byte, error) {
	if this.exhausted {
		return nil, io.EOF
	}
	chunk, err := this.source.Next()
	if err == io.EOF {
		this.exhausted = true
		return nil, io.EOF
	}
	if err != nil {
		return nil, NewRemoteError(err)
	}
	if this.verifier != nil {
		this.verifier.Update(chunk)
	}
	return chunk, nil
}

// streamReader adapts the chunk stream to io.Reader for the codec and
// archive readers. Errors pass through untranslated so FromIOError can
// recover the precise cause on the far side.
type streamReader struct {
	stream *verifyingStream
	buffer []byte
}

func newStreamReader(stream *verifyingStream) *streamReader {
	return &streamReader{stream: stream}
}

func (this *streamReader) Read(target []byte) (int, error) {
	for len(this.buffer) == 0 {
		chunk, err := this.stream.Next()
		if err != nil {
			return 0, err
		}
		this.buffer = chunk
	}
	count := copy(target, this.buffer)
	this.buffer = this.buffer[count:]
	return count, nil
}
