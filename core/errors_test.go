package core

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestErrorConversionFixture(t *testing.T) {
	gunit.Run(new(ErrorConversionFixture), t)
}

type ErrorConversionFixture struct {
	*gunit.Fixture
}

func (this *ErrorConversionFixture) TestPreciseErrorsSurviveTheRoundTrip() {
	for _, precise := range []*DownloadError{
		NewUnzipError(errors.New("bad central directory")),
		NewRemoteError(errors.New("connection reset")),
	} {
		generic := precise.IOError()
		recovered := FromIOError(generic)
		this.So(recovered, should.Equal, precise)
		this.So(recovered.Kind, should.Equal, precise.Kind)
		this.So(recovered.Cause, should.Equal, precise.Cause)
	}
}

func (this *ErrorConversionFixture) TestPlainFailureRoundTripsUnderTheGenericKind() {
	plain := os.ErrPermission

	recovered := FromIOError(plain)
	this.So(recovered.Kind, should.Equal, KindIO)
	this.So(recovered.Cause, should.Equal, plain)

	generic := recovered.IOError()
	this.So(generic, should.Equal, plain)
}

func (this *ErrorConversionFixture) TestEmbeddedPreciseCauseIsRecoveredThroughWrappingLayers() {
	precise := NewRemoteError(errors.New("timeout"))
	buried := fmt.Errorf("reading archive: %w", fmt.Errorf("decompress: %w", precise))

	recovered := FromIOError(buried)

	this.So(recovered, should.Equal, precise)
}

func (this *ErrorConversionFixture) TestGenericKindUnwrapsToItsCauseVerbatim() {
	cause := errors.New("disk full")
	generic := &DownloadError{Kind: KindIO, Cause: cause}

	this.So(generic.IOError(), should.Equal, cause)
}

func (this *ErrorConversionFixture) TestMessagesNameTheFailureKind() {
	this.So(NewUnzipError(errors.New("x")).Error(), should.StartWith, "failed to extract zipfile:")
	this.So(NewRemoteError(errors.New("x")).Error(), should.StartWith, "failed to download from remote:")
	this.So(FromIOError(errors.New("x")).Error(), should.StartWith, "I/O error:")
}

func (this *ErrorConversionFixture) TestErrorsIsAndAsSeeThroughTheTaxonomy() {
	cause := os.ErrNotExist
	err := NewRemoteError(fmt.Errorf("fetch: %w", cause))

	this.So(errors.Is(err, os.ErrNotExist), should.BeTrue)

	var recovered *DownloadError
	this.So(errors.As(fmt.Errorf("outer: %w", err), &recovered), should.BeTrue)
	this.So(recovered.Kind, should.Equal, KindRemote)
}
