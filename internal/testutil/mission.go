package testutil

import (
	"testing"

	"github.com/Veraticus/typesplit/internal/storage"
)

// Paths of the in-memory mission layout.
const (
	SourcePath   = "/mission/db/types.xml"
	BackupPath   = "/mission/db/types.bk"
	OutputDir    = "/mission/db/types"
	ManifestPath = "/mission/cfgeconomycore.xml"
)

// Manifest is a minimal economy manifest with one class and one default.
const Manifest = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<economycore>
	<classes>
		<rootclass name="DefaultCharacter" act="character"/>
	</classes>
	<defaults>
		<default name="dyn_radius" value="40"/>
	</defaults>
</economycore>
`

// Mission is an in-memory mission folder seeded with a types document and
// a manifest.
type Mission struct {
	Store *storage.FileStore
	t     *testing.T
}

// SetupMission creates the mission layout with types as the source document.
func SetupMission(t *testing.T, types string) *Mission {
	t.Helper()

	m := &Mission{Store: storage.NewMemStore(), t: t}
	m.Write(SourcePath, types)
	m.Write(ManifestPath, Manifest)
	return m
}

// Write writes content to path or fails the test.
func (m *Mission) Write(path, content string) {
	m.t.Helper()
	if err := m.Store.WriteFile(path, []byte(content)); err != nil {
		m.t.Fatalf("failed to write %s: %v", path, err)
	}
}

// Read returns the content at path or fails the test.
func (m *Mission) Read(path string) string {
	m.t.Helper()
	data, err := m.Store.ReadFile(path)
	if err != nil {
		m.t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists.
func (m *Mission) Exists(path string) bool {
	m.t.Helper()
	ok, err := m.Store.Exists(path)
	if err != nil {
		m.t.Fatalf("failed to stat %s: %v", path, err)
	}
	return ok
}

// CategoryFiles returns the generated category file names.
func (m *Mission) CategoryFiles() []string {
	m.t.Helper()
	names, err := m.Store.List(OutputDir, ".xml")
	if err != nil {
		m.t.Fatalf("failed to list %s: %v", OutputDir, err)
	}
	return names
}
