package contracts

import (
	"path"
	"sort"
	"strings"
)

// ExtractedFiles records every path produced by an extraction. Every
// non-root entry keeps its parent recorded as a directory whose child set
// contains the entry's final component.
type ExtractedFiles struct {
	entries map[string]*extractedEntry
}

type extractedEntry struct {
	isDir    bool
	children map[string]struct{}
}

func NewExtractedFiles() *ExtractedFiles {
	return &ExtractedFiles{entries: make(map[string]*extractedEntry)}
}

func (this *ExtractedFiles) RecordFile(name string) {
	name = path.Clean(name)
	if entry := this.entries[name]; entry != nil && entry.isDir {
		this.removeSubtree(name)
	}
	this.entries[name] = &extractedEntry{}
	this.recordAncestors(name)
}

// removeSubtree drops every recorded descendant of a directory that is being
// replaced by a file, so no entry is left without a recorded parent.
func (this *ExtractedFiles) removeSubtree(name string) {
	prefix := name + "/"
	for recorded := range this.entries {
		if strings.HasPrefix(recorded, prefix) {
			delete(this.entries, recorded)
		}
	}
}

func (this *ExtractedFiles) RecordDir(name string) {
	this.directory(path.Clean(name))
	this.recordAncestors(path.Clean(name))
}

func (this *ExtractedFiles) recordAncestors(name string) {
	for name != "." && name != "/" {
		parent := path.Dir(name)
		entry := this.directory(parent)
		entry.children[path.Base(name)] = struct{}{}
		name = parent
	}
}

func (this *ExtractedFiles) directory(name string) *extractedEntry {
	entry := this.entries[name]
	if entry == nil || !entry.isDir {
		entry = &extractedEntry{isDir: true, children: make(map[string]struct{})}
		this.entries[name] = entry
	}
	return entry
}

// HasFile reports whether name was recorded as a regular file.
func (this *ExtractedFiles) HasFile(name string) bool {
	entry := this.entries[path.Clean(name)]
	return entry != nil && !entry.isDir
}

// Children returns the immediate child components of a recorded directory;
// false for files and unrecorded paths.
func (this *ExtractedFiles) Children(name string) (map[string]struct{}, bool) {
	entry := this.entries[path.Clean(name)]
	if entry == nil || !entry.isDir {
		return nil, false
	}
	return entry.children, true
}

func (this *ExtractedFiles) Paths() (paths []string) {
	for name := range this.entries {
		paths = append(paths, name)
	}
	sort.Strings(paths)
	return paths
}
