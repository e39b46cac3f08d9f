package model

const (
	// ManifestFileType is the type attribute of every generated manifest entry.
	ManifestFileType = "types"
	// ManifestFolder is the folder attribute of the owned ce section.
	ManifestFolder = "types"
)

// ManifestEntry is one file registered in the economy manifest.
type ManifestEntry struct {
	FileName string
	FileType string
}

// ManifestSection groups manifest entries under a ce folder.
type ManifestSection struct {
	Folder  string
	Entries []ManifestEntry
}
