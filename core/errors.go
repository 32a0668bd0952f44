package core

import "errors"

type ErrorKind int

const (
	KindUnzip ErrorKind = iota
	KindRemote
	KindIO
)

func (this ErrorKind) String() string {
	switch this {
	case KindUnzip:
		return "unzip"
	case KindRemote:
		return "remote"
	default:
		return "io"
	}
}

// DownloadError is the closed taxonomy every terminal download operation
// surfaces its failures through.
type DownloadError struct {
	Kind  ErrorKind
	Cause error
}

func NewUnzipError(cause error) *DownloadError {
	return &DownloadError{Kind: KindUnzip, Cause: cause}
}

func NewRemoteError(cause error) *DownloadError {
	return &DownloadError{Kind: KindRemote, Cause: cause}
}

func (this *DownloadError) Error() string {
	switch this.Kind {
	case KindUnzip:
		return "failed to extract zipfile: " + this.Cause.Error()
	case KindRemote:
		return "failed to download from remote: " + this.Cause.Error()
	default:
		return "I/O error: " + this.Cause.Error()
	}
}

func (this *DownloadError) Unwrap() error { return this.Cause }

// FromIOError recovers a *DownloadError embedded anywhere in the chain, else
// carries the failure unchanged under KindIO. FromIOError and IOError are
// exact inverses.
func FromIOError(err error) *DownloadError {
	var precise *DownloadError
	if errors.As(err, &precise) {
		return precise
	}
	return &DownloadError{Kind: KindIO, Cause: err}
}

// IOError converts back: a KindIO error yields its cause verbatim, anything
// else is handed over whole so a later FromIOError recovers it exactly.
func (this *DownloadError) IOError() error {
	if this.Kind == KindIO {
		return this.Cause
	}
	return this
}
