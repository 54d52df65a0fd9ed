package fixture

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_MapFS(t *testing.T) {
	fsys := fstest.MapFS{
		"proj/src/app.ts":         {Data: []byte("app")},
		"proj/src/util/str.ts":    {Data: []byte("str")},
		"proj/README.md":          {Data: []byte("# readme")},
		"proj/dist":               {Mode: fs.ModeDir | 0755},
		"proj/node_modules/x.js":  {Data: []byte("ignored")},
		"proj/.git/HEAD":          {Data: []byte("ignored")},
		"other/not-captured.json": {Data: []byte("{}")},
	}

	doc, err := Capture(fsys, "proj", CaptureOptions{MountAt: "/repo"})
	require.NoError(t, err)

	var paths []string
	for _, e := range doc.Entries {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{
		"/repo/README.md",
		"/repo/dist",
		"/repo/src/app.ts",
		"/repo/src/util/str.ts",
	}, paths)
	assert.Nil(t, doc.Entries[1].Content, "empty directories become folder entries")
	assert.Equal(t, "/repo", doc.CurrentDirectory)

	h, err := doc.Host(nil)
	require.NoError(t, err)
	assert.Equal(t, "str", h.ReadFile("src/util/str.ts"))
	assert.True(t, h.DirectoryExists("/repo/dist"))
	assert.False(t, h.DirectoryExists("/repo/node_modules"))
}

func TestCapture_AferoIOFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("data/a", 0755))
	require.NoError(t, mem.MkdirAll("data/b", 0755))
	require.NoError(t, afero.WriteFile(mem, "data/a/one.ts", []byte("1"), 0644))
	require.NoError(t, afero.WriteFile(mem, "data/b/two.ts", []byte("2"), 0644))

	doc, err := Capture(afero.NewIOFS(mem), "data", CaptureOptions{Ignore: []string{}})
	require.NoError(t, err)

	h, err := doc.Host(nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/a/one.ts", "/b/two.ts"}, h.ReadDirectory("/", ".ts", nil))
}

func TestCapture_DirectoryWithOnlyIgnoredEntries(t *testing.T) {
	fsys := fstest.MapFS{
		"proj/vendored/.git/HEAD":     {Data: []byte("ref")},
		"proj/deps/node_modules/x.js": {Data: []byte("x")},
		"proj/osx/.DS_Store":          {Data: []byte("junk")},
		"proj/src/app.ts":             {Data: []byte("app")},
	}

	doc, err := Capture(fsys, "proj", CaptureOptions{})
	require.NoError(t, err)

	var paths []string
	for _, e := range doc.Entries {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"/deps", "/osx", "/src/app.ts", "/vendored"}, paths)

	h, err := doc.Host(nil)
	require.NoError(t, err)
	for _, dir := range []string{"/deps", "/osx", "/vendored"} {
		assert.True(t, h.DirectoryExists(dir), dir)
		assert.Empty(t, h.GetDirectories(dir), dir)
	}
	assert.False(t, h.DirectoryExists("/vendored/.git"))
}

func TestCapture_RelativeMountIsRooted(t *testing.T) {
	fsys := fstest.MapFS{"a.ts": {Data: []byte("a")}}

	doc, err := Capture(fsys, ".", CaptureOptions{MountAt: "project"})
	require.NoError(t, err)
	assert.Equal(t, "/project", doc.CurrentDirectory)
	assert.Equal(t, "/project/a.ts", doc.Entries[0].Path)

	h, err := doc.Host(nil)
	require.NoError(t, err)
	assert.True(t, h.FileExists("a.ts"))
}

func TestCapture_MissingRoot(t *testing.T) {
	_, err := Capture(fstest.MapFS{}, "nope", CaptureOptions{})
	require.Error(t, err)
}
