package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/a/b/c", "/a/b/c"},
		{"/a/b/", "/a/b"},
		{"/a//b", "/a/b"},
		{"/a/./b", "/a/b"},
		{"/a/b/../c", "/a/c"},
		{"/..", "/"},
		{"/a/../../b", "/b"},
		{`\a\b\c.ts`, "/a/b/c.ts"},
		{"c:/", "c:/"},
		{`C:\Users\dev\..\app.ts`, "C:/Users/app.ts"},
		{"//server/share/dir/../x", "//server/share/x"},
		{"a/../../b", "../b"},
		{"c:", "c:/"},
		{"//server/share", "//server/share/"},
		{`\\server\share`, "//server/share/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestRootLength(t *testing.T) {
	assert.Equal(t, 0, RootLength(""))
	assert.Equal(t, 0, RootLength("a/b"))
	assert.Equal(t, 1, RootLength("/"))
	assert.Equal(t, 1, RootLength("/a/b"))
	assert.Equal(t, 3, RootLength("c:/a"))
	assert.Equal(t, 2, RootLength("c:"))
	assert.Equal(t, len("//server/share/"), RootLength("//server/share/file"))
	assert.Equal(t, len("//server"), RootLength("//server"))
}

func TestDirectoryOf_FixedPointAtRoot(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/a/b/c", "/a/b"},
		{"/a", "/"},
		{"/", "/"},
		{"c:/a", "c:/"},
		{"c:/", "c:/"},
		{"//server/share/a", "//server/share/"},
		{"//server/share/", "//server/share/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectoryOf(tt.in))
		})
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "c.ts", BaseName("/a/b/c.ts"))
	assert.Equal(t, "a", BaseName("/a"))
	assert.Equal(t, "", BaseName("/"))
	assert.Equal(t, "", BaseName("c:/"))
}

func TestCanonicalizer_ToPath(t *testing.T) {
	insensitive := New(false, "/Work/Project")
	sensitive := New(true, "/Work/Project")

	assert.Equal(t, Path("/a/b.ts"), insensitive.ToPath("/A/B.ts"))
	assert.Equal(t, Path("/A/B.ts"), sensitive.ToPath("/A/B.ts"))

	// relative names resolve against the current directory
	assert.Equal(t, Path("/work/project/src/x.ts"), insensitive.ToPath("src/X.ts"))
	assert.Equal(t, Path("/Work/Project/src/X.ts"), sensitive.ToPath("src/X.ts"))
	assert.Equal(t, Path("/Work/lib.d.ts"), sensitive.ToPath("../lib.d.ts"))

	assert.Equal(t, insensitive.ToPath(`\A\b\`), insensitive.ToPath("/a/B"))
}

func TestCanonicalizer_ToPathAgainstRootDirectory(t *testing.T) {
	tests := []struct {
		name string
		cwd  string
		in   string
		want Path
	}{
		{name: "slash root", cwd: "/", in: "a/b/app.ts", want: "/a/b/app.ts"},
		{name: "slash root dot", cwd: "/", in: "./a", want: "/a"},
		{name: "slash root parent", cwd: "/", in: "../a", want: "/a"},
		{name: "slash root empty", cwd: "/", in: "", want: "/"},
		{name: "drive root", cwd: "c:/", in: "Src/App.ts", want: "c:/src/app.ts"},
		{name: "drive root backslashes", cwd: `C:\`, in: `src\app.ts`, want: "c:/src/app.ts"},
		{name: "bare drive", cwd: "c:", in: "a", want: "c:/a"},
		{name: "unc root", cwd: "//server/share/", in: "dir/x.ts", want: "//server/share/dir/x.ts"},
		{name: "bare unc share", cwd: "//server/share", in: "x.ts", want: "//server/share/x.ts"},
		{name: "unc root empty", cwd: "//Server/Share/", in: "", want: "//server/share/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(false, tt.cwd).ToPath(tt.in))
		})
	}
}

func TestCanonicalizer_NormalizedAbsoluteAgainstRootDirectory(t *testing.T) {
	assert.Equal(t, "/a/B.ts", New(true, "/").NormalizedAbsolute("a/B.ts"))
	assert.Equal(t, "C:/Src/App.ts", New(true, "C:/").NormalizedAbsolute("Src/App.ts"))
	assert.Equal(t, "/", DirectoryOf(New(true, "/").NormalizedAbsolute("a")))
}

func TestNormalize_UNCRootMatchesDirectoryOf(t *testing.T) {
	share := Normalize("//server/share")
	assert.Equal(t, share, DirectoryOf(Normalize("//server/share/a")))
	assert.Equal(t, share, DirectoryOf(share))
}

func TestCanonicalizer_NormalizedAbsoluteKeepsCase(t *testing.T) {
	c := New(false, "/Work")
	assert.Equal(t, "/Work/Src/App.ts", c.NormalizedAbsolute("Src/./App.ts"))
	assert.Equal(t, "/A/B.ts", c.NormalizedAbsolute("/A/B.ts"))
}

func TestCanonicalizer_HasExtension(t *testing.T) {
	insensitive := New(false, "/")
	sensitive := New(true, "/")

	assert.True(t, sensitive.HasExtension("/a/app.ts", ".ts"))
	assert.True(t, sensitive.HasExtension("/a/module.d.ts", ".ts"))
	assert.False(t, sensitive.HasExtension("/a/APP.TS", ".ts"))
	assert.True(t, insensitive.HasExtension("/a/APP.TS", ".ts"))
	assert.False(t, sensitive.HasExtension(".ts", ".ts"), "path must be longer than the extension")
	assert.True(t, sensitive.HasExtension("/a/readme", ""))
	assert.False(t, sensitive.HasExtension("/a/app.tsx", ".ts"))
}

func TestIsRooted(t *testing.T) {
	assert.True(t, IsRooted("/a"))
	assert.True(t, IsRooted(`c:\a`))
	assert.False(t, IsRooted("a/b"))
	assert.False(t, IsRooted(""))
	assert.True(t, IsRooted("//server/share"))
}
