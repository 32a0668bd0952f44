package contracts

import (
	"path"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestExtractedFilesFixture(t *testing.T) {
	gunit.Run(new(ExtractedFilesFixture), t)
}

type ExtractedFilesFixture struct {
	*gunit.Fixture

	files *ExtractedFiles
}

func (this *ExtractedFilesFixture) Setup() {
	this.files = NewExtractedFiles()
}

func (this *ExtractedFilesFixture) TestEmptyLedger() {
	this.So(this.files.HasFile("anything"), should.BeFalse)
	_, found := this.files.Children(".")
	this.So(found, should.BeFalse)
}

func (this *ExtractedFilesFixture) TestSingleFileRecordsRootDirectory() {
	this.files.RecordFile("cargo-binstall")

	this.So(this.files.HasFile("cargo-binstall"), should.BeTrue)
	this.So(this.files.HasFile("1234"), should.BeFalse)
	children, found := this.files.Children(".")
	this.So(found, should.BeTrue)
	this.So(children, should.Resemble, set("cargo-binstall"))
}

func (this *ExtractedFilesFixture) TestNestedFileRecordsAncestorChain() {
	this.files.RecordFile("pkg/completions/zsh")

	this.So(this.files.HasFile("pkg/completions/zsh"), should.BeTrue)
	children, found := this.files.Children("pkg")
	this.So(found, should.BeTrue)
	this.So(children, should.Resemble, set("completions"))
	children, found = this.files.Children("pkg/completions")
	this.So(found, should.BeTrue)
	this.So(children, should.Resemble, set("zsh"))
	children, found = this.files.Children(".")
	this.So(found, should.BeTrue)
	this.So(children, should.Resemble, set("pkg"))
}

func (this *ExtractedFilesFixture) TestSiblingsAccumulateUnderParent() {
	this.files.RecordFile("pkg/README.md")
	this.files.RecordFile("pkg/LICENSE")
	this.files.RecordFile("pkg/bin")
	this.files.RecordDir("pkg/completions")
	this.files.RecordFile("pkg/completions/zsh")

	children, found := this.files.Children("pkg")
	this.So(found, should.BeTrue)
	this.So(children, should.Resemble, set("README.md", "LICENSE", "bin", "completions"))
}

func (this *ExtractedFilesFixture) TestFileAndDirectoryTagsAreExclusive() {
	this.files.RecordFile("pkg/completions/zsh")

	this.So(this.files.HasFile("pkg/completions"), should.BeFalse)
	this.So(this.files.HasFile("pkg"), should.BeFalse)
	this.So(this.files.HasFile("."), should.BeFalse)
	_, found := this.files.Children("pkg/completions/zsh")
	this.So(found, should.BeFalse)
}

func (this *ExtractedFilesFixture) TestEveryNonRootEntryHasItsParentRecorded() {
	this.files.RecordFile("a/b/c/d")
	this.files.RecordDir("a/x")
	this.files.RecordFile("top")

	for _, name := range this.files.Paths() {
		if name == "." {
			continue
		}
		children, found := this.files.Children(path.Dir(name))
		this.So(found, should.BeTrue)
		this.So(children, should.ContainKey, path.Base(name))
	}
}

func (this *ExtractedFilesFixture) TestFileReplacingADirectoryDropsTheStaleSubtree() {
	this.files.RecordDir("a")
	this.files.RecordFile("a/b")
	this.files.RecordFile("a")

	this.So(this.files.HasFile("a"), should.BeTrue)
	this.So(this.files.HasFile("a/b"), should.BeFalse)
	_, found := this.files.Children("a")
	this.So(found, should.BeFalse)
	children, found := this.files.Children(".")
	this.So(found, should.BeTrue)
	this.So(children, should.Resemble, set("a"))
	this.So(this.files.Paths(), should.Resemble, []string{".", "a"})
}

func (this *ExtractedFilesFixture) TestDirectoryReplacingAFileKeepsTheParentChain() {
	this.files.RecordFile("a")
	this.files.RecordDir("a")
	this.files.RecordFile("a/b")

	this.So(this.files.HasFile("a"), should.BeFalse)
	this.So(this.files.HasFile("a/b"), should.BeTrue)
	children, found := this.files.Children("a")
	this.So(found, should.BeTrue)
	this.So(children, should.Resemble, set("b"))
}

func (this *ExtractedFilesFixture) TestRecordedPathsAreCleaned() {
	this.files.RecordFile("./pkg//bin")

	this.So(this.files.HasFile("pkg/bin"), should.BeTrue)
	children, found := this.files.Children("pkg")
	this.So(found, should.BeTrue)
	this.So(children, should.Resemble, set("bin"))
}

func (this *ExtractedFilesFixture) TestPathsAreSorted() {
	this.files.RecordFile("b")
	this.files.RecordFile("a")

	this.So(this.files.Paths(), should.Resemble, []string{".", "a", "b"})
}

///////////////////////////////////////////////////////////////////////////////

func set(names ...string) map[string]struct{} {
	result := make(map[string]struct{})
	for _, name := range names {
		result[name] = struct{}{}
	}
	return result
}
