// Package manifest reads, updates, and renders the economy core manifest
// (cfgeconomycore.xml) that tells the server which type files to load.
package manifest

import (
	"fmt"
	"sort"

	"github.com/Veraticus/typesplit/internal/common"
	"github.com/Veraticus/typesplit/internal/model"
	"github.com/Veraticus/typesplit/internal/xmldoc"
)

// Element names of the manifest document.
const (
	RootElement      = "economycore"
	ClassesElement   = "classes"
	RootClassElement = "rootclass"
	DefaultsElement  = "defaults"
	CEElement        = "ce"
	FileElement      = "file"
)

// Document is a parsed manifest. Classes and Defaults are carried through
// unchanged; Entries is the section this tool owns.
type Document struct {
	Classes  []*model.Node
	Defaults []*model.Node
	Entries  []model.ManifestEntry
	// Foreign holds ce sections for folders other than the owned one.
	Foreign []model.ManifestSection
}

// Parse reads a manifest document. Missing classes or defaults sections
// yield common.ErrStructure.
func Parse(data []byte) (*Document, error) {
	root, err := xmldoc.Parse(data)
	if err != nil {
		return nil, err
	}

	if root.Name != RootElement {
		return nil, fmt.Errorf("%w: root element is <%s>, want <%s>", common.ErrStructure, root.Name, RootElement)
	}

	classes := root.Child(ClassesElement)
	if classes == nil {
		return nil, fmt.Errorf("%w: missing <%s> section", common.ErrStructure, ClassesElement)
	}
	defaults := root.Child(DefaultsElement)
	if defaults == nil {
		return nil, fmt.Errorf("%w: missing <%s> section", common.ErrStructure, DefaultsElement)
	}

	doc := &Document{
		Classes:  classes.Descendants(RootClassElement),
		Defaults: defaults.Elements(""),
	}

	for _, ce := range root.Elements(CEElement) {
		folder, _ := ce.Attr("folder")
		entries := fileEntries(ce)
		if folder == model.ManifestFolder {
			doc.Entries = append(doc.Entries, entries...)
			continue
		}
		doc.Foreign = append(doc.Foreign, model.ManifestSection{Folder: folder, Entries: entries})
	}

	return doc, nil
}

func fileEntries(ce *model.Node) []model.ManifestEntry {
	files := ce.Elements(FileElement)
	entries := make([]model.ManifestEntry, 0, len(files))
	for _, f := range files {
		name, _ := f.Attr("name")
		fileType, _ := f.Attr("type")
		entries = append(entries, model.ManifestEntry{FileName: name, FileType: fileType})
	}
	return entries
}

// Normalize deduplicates fileNames and sorts them lexicographically.
// Empty names are dropped.
func Normalize(fileNames []string) []string {
	seen := make(map[string]bool, len(fileNames))
	out := make([]string, 0, len(fileNames))
	for _, name := range fileNames {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Update returns a copy of doc whose owned entries are replaced by one
// entry per normalized file name. doc itself is not modified.
func Update(doc *Document, fileNames []string) *Document {
	updated := &Document{
		Classes:  doc.Classes,
		Defaults: doc.Defaults,
		Foreign:  doc.Foreign,
	}

	for _, name := range Normalize(fileNames) {
		updated.Entries = append(updated.Entries, model.ManifestEntry{
			FileName: name,
			FileType: model.ManifestFileType,
		})
	}

	return updated
}

// FileNames returns the file names of the owned entries.
func (d *Document) FileNames() []string {
	names := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		names = append(names, e.FileName)
	}
	return names
}
