package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/typesplit/internal/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<economycore>
	<classes>
		<rootclass name="DefaultCharacter" act="character"/>
	</classes>
	<defaults>
		<default name="dyn_radius" value="40"/>
	</defaults>
	<ce folder="types">
		<file name="old.xml" type="types"/>
	</ce>
</economycore>
`

const testTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<types>
    <type name="Ammo_9x39">
        <nominal>10</nominal>
        <category name="weapons"/>
    </type>
    <type name="GhillieSuit_Tan">
        <category name="tools"/>
    </type>
    <type name="Unknown_Widget"/>
</types>
`

// mission lays out a mission folder: <root>/db/types.xml and <root>/cfgeconomycore.xml.
type mission struct {
	root     string
	source   string
	manifest string
	types    string
}

func newMission(t *testing.T) mission {
	t.Helper()
	root := t.TempDir()
	m := mission{
		root:     root,
		source:   filepath.Join(root, "db", "types.xml"),
		manifest: filepath.Join(root, "cfgeconomycore.xml"),
		types:    filepath.Join(root, "db", "types"),
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(m.source), 0o755))
	require.NoError(t, os.WriteFile(m.source, []byte(testTypes), 0o644))
	require.NoError(t, os.WriteFile(m.manifest, []byte(testManifest), 0o644))
	return m
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	cfgFile = ""
	t.Cleanup(viper.Reset)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	names := make(map[string]*cobra.Command)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = sub
	}

	for _, want := range []string{"split", "classify", "manifest", "rules", "version"} {
		assert.Contains(t, names, want)
	}

	flag := names["split"].Flag("fresh")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestSplitCmd(t *testing.T) {
	m := newMission(t)

	out, err := execute(t, "split", "--source", m.source, "--no-progress", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Split Complete")

	assert.Contains(t, readFile(t, filepath.Join(m.types, "ammo.xml")), `<type name="Ammo_9x39">`)
	assert.Contains(t, readFile(t, filepath.Join(m.types, "clothes.xml")), `<type name="GhillieSuit_Tan">`)
	assert.Contains(t, readFile(t, filepath.Join(m.types, "uncategorized.xml")), `<type name="Unknown_Widget"/>`)

	manifest := readFile(t, m.manifest)
	assert.Contains(t, manifest, "\t\t<file name=\"ammo.xml\" type=\"types\" />\n\t\t<file name=\"clothes.xml\" type=\"types\" />\n\t\t<file name=\"uncategorized.xml\" type=\"types\" />\n")
	assert.NotContains(t, manifest, "old.xml")

	_, err = os.Stat(m.source)
	assert.True(t, os.IsNotExist(err), "source archived")
	assert.Equal(t, testTypes, readFile(t, filepath.Join(m.root, "db", "types.bk")))
}

func TestSplitCmd_FreshDeclined(t *testing.T) {
	m := newMission(t)
	require.NoError(t, os.MkdirAll(m.types, 0o755))
	stale := filepath.Join(m.types, "food.xml")
	require.NoError(t, os.WriteFile(stale, []byte("<types/>\n"), 0o644))

	out, err := executeWithInput(t, "n\n", "split", "-s", m.source, "--fresh", "--no-progress", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "food.xml")
	assert.Contains(t, out, "Aborted")

	assert.FileExists(t, stale)
	assert.FileExists(t, m.source)
	assert.Equal(t, testManifest, readFile(t, m.manifest))
}

func TestSplitCmd_FreshConfirmed(t *testing.T) {
	m := newMission(t)
	require.NoError(t, os.MkdirAll(m.types, 0o755))
	stale := filepath.Join(m.types, "food.xml")
	require.NoError(t, os.WriteFile(stale, []byte("<types/>\n"), 0o644))

	_, err := execute(t, "split", "-s", m.source, "--fresh", "--yes", "--no-progress", "--log-level", "error")
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(m.types, "ammo.xml"))
	assert.FileExists(t, filepath.Join(m.root, "db", "types.bk"))
}

func TestSplitCmd_DryRun(t *testing.T) {
	m := newMission(t)

	out, err := execute(t, "split", "-s", m.source, "--dry-run", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")

	_, err = os.Stat(m.types)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, testManifest, readFile(t, m.manifest))
}

func TestSplitCmd_MissingSource(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "split", "-s", filepath.Join(dir, "types.xml"), "--log-level", "error")
	assert.ErrorIs(t, err, common.ErrSourceNotFound)
}

func TestSplitCmd_InvalidLogLevel(t *testing.T) {
	m := newMission(t)

	_, err := execute(t, "split", "-s", m.source, "--log-level", "loud")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestClassifyCmd(t *testing.T) {
	m := newMission(t)

	out, err := execute(t, "classify", "-s", m.source, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "ammo.xml")
	assert.Contains(t, out, "3 types in 3 categories")

	out, err = execute(t, "classify", "-s", m.source, "--log-level", "error", "GhillieSuit_Tan", "Missing_Thing")
	require.NoError(t, err)
	assert.Contains(t, out, `GhillieSuit_Tan -> clothes (name in "GhillieSuit_Tan"`)
	assert.Contains(t, out, "Missing_Thing not found")

	_, err = os.Stat(m.types)
	assert.True(t, os.IsNotExist(err), "classify never writes")
}

func TestManifestCmd(t *testing.T) {
	m := newMission(t)
	require.NoError(t, os.MkdirAll(m.types, 0o755))
	for _, name := range []string{"zombies.xml", "ammo.xml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(m.types, name), []byte("<types/>"), 0o644))
	}

	out, err := execute(t, "manifest", "-s", m.source, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered 2 files")

	manifest := readFile(t, m.manifest)
	assert.Contains(t, manifest, "<file name=\"ammo.xml\" type=\"types\" />\n\t\t<file name=\"zombies.xml\" type=\"types\" />")
	assert.NotContains(t, manifest, "notes.txt")
}

func TestRulesCmd(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "uncategorized")

	out, err = execute(t, "rules", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "category: ammo")
	assert.Contains(t, out, "clothes_overrides:")
	assert.Contains(t, out, "- GhillieSuit_Tan")

	_, err = execute(t, "rules", "--format", "xml")
	assert.Error(t, err)
}

func TestRulesCmd_ConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "typesplit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("rules:\n  food_overrides:\n    - Honey\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "rules", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "- Honey")
	assert.NotContains(t, out, "- Zucchini")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "typesplit dev\n", out)
}
