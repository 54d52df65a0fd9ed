package host

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fixturehost/internal/logging"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

var (
	appFile    = fixturehost.File("/a/b/c/app.ts", "\nimport {f} from \"./module\"\nconsole.log(f)\n")
	moduleFile = fixturehost.File("/a/b/c/module.d.ts", "export let x: number")
	extraFile  = fixturehost.File("/a/b/c/d/extra.ts", "export const extra = 1")
	libFile    = fixturehost.File("/a/lib/lib.d.ts", "declare var lib: any;")
)

func newHost(t *testing.T, caseSensitive bool, entries ...fixturehost.Entry) *TestServerHost {
	t.Helper()
	h, err := New(Options{
		UseCaseSensitiveFileNames: caseSensitive,
		ExecutingFilePath:         "/a/lib",
		CurrentDirectory:          "/",
	}, entries...)
	require.NoError(t, err)
	return h
}

// requirePanicsWith runs fn and asserts it panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, errors.Is(err, target), "expected %v, got %v", target, err)
	}()
	fn()
}

func TestExistence_MutuallyExclusive(t *testing.T) {
	h := newHost(t, true, appFile, moduleFile, libFile, fixturehost.Folder("/a/empty"))

	tests := []struct {
		path   string
		isFile bool
		isDir  bool
	}{
		{"/a/b/c/app.ts", true, false},
		{"/a/lib/lib.d.ts", true, false},
		{"/a/b/c", false, true},
		{"/a/empty", false, true},
		{"/", false, true},
		{"/a/missing.ts", false, false},
		{"/nowhere", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.isFile, h.FileExists(tt.path))
			assert.Equal(t, tt.isDir, h.DirectoryExists(tt.path))
			assert.False(t, h.FileExists(tt.path) && h.DirectoryExists(tt.path))
		})
	}
}

func TestExistence_CasePolicy(t *testing.T) {
	entry := fixturehost.File("/A/B.ts", "")

	insensitive := newHost(t, false, entry)
	assert.True(t, insensitive.FileExists("/a/b.ts"))
	assert.True(t, insensitive.DirectoryExists("/a"))

	sensitive := newHost(t, true, entry)
	assert.False(t, sensitive.FileExists("/a/b.ts"))
	assert.True(t, sensitive.FileExists("/A/B.ts"))
	assert.False(t, sensitive.DirectoryExists("/a"))
}

func TestExistence_RelativeAndUnnormalizedPaths(t *testing.T) {
	h, err := New(Options{CurrentDirectory: "/a/b"}, appFile)
	require.NoError(t, err)

	assert.True(t, h.FileExists("c/app.ts"))
	assert.True(t, h.FileExists(`\a\b\c\..\c\app.ts`))
	assert.True(t, h.DirectoryExists("../b/c/"))
}

func TestExistence_RelativeToRootDirectory(t *testing.T) {
	tests := []struct {
		name    string
		cwd     string
		entries []fixturehost.Entry
		file    string
		dir     string
	}{
		{
			name:    "slash root",
			cwd:     "/",
			entries: []fixturehost.Entry{fixturehost.File("/a/b/app.ts", "x")},
			file:    "a/b/app.ts",
			dir:     "a/b",
		},
		{
			name:    "drive root",
			cwd:     "c:/",
			entries: []fixturehost.Entry{fixturehost.File("c:/src/app.ts", "x")},
			file:    "src/app.ts",
			dir:     "src",
		},
		{
			name:    "unc root",
			cwd:     "//server/share/",
			entries: []fixturehost.Entry{fixturehost.File("//server/share/src/app.ts", "x")},
			file:    "src/app.ts",
			dir:     "src",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := New(Options{CurrentDirectory: tt.cwd}, tt.entries...)
			require.NoError(t, err)

			assert.True(t, h.FileExists(tt.file))
			assert.True(t, h.DirectoryExists(tt.dir))
			assert.Equal(t, "x", h.ReadFile(tt.file))
		})
	}
}

func TestNew_RelativeDescriptorsAgainstRootDirectory(t *testing.T) {
	h, err := New(Options{CurrentDirectory: "/"},
		fixturehost.File("/a/b/app.ts", "x"),
		fixturehost.File("c/d.ts", "y"),
		fixturehost.Folder("e"),
	)
	require.NoError(t, err)

	assert.True(t, h.FileExists("/c/d.ts"))
	assert.True(t, h.DirectoryExists("/e"))
	assert.Equal(t, []string{"a", "c", "e"}, h.GetDirectories("/"))
	assert.Equal(t, []string{"/a/b/app.ts", "/c/d.ts"}, h.ReadDirectory("/", ".ts", nil))
}

func TestNew_RejectsRelativeCurrentDirectory(t *testing.T) {
	for _, cwd := range []string{"work", "./a", "../x"} {
		t.Run(cwd, func(t *testing.T) {
			_, err := New(Options{CurrentDirectory: cwd}, appFile)
			require.Error(t, err)
			assert.True(t, errors.Is(err, fixturehost.ErrInvalidFixture))
		})
	}
}

func TestGetDirectories_InsertionOrder(t *testing.T) {
	h := newHost(t, true,
		fixturehost.File("/p/zeta.ts", ""),
		fixturehost.Folder("/p/beta"),
		fixturehost.File("/p/alpha.ts", ""),
		fixturehost.File("/p/beta/inner.ts", ""),
		fixturehost.Folder("/p/gamma"),
	)

	assert.Equal(t, []string{"zeta.ts", "beta", "alpha.ts", "gamma"}, h.GetDirectories("/p"))
	assert.Equal(t, []string{"p"}, h.GetDirectories("/"))
	assert.Equal(t, []string{"inner.ts"}, h.GetDirectories("/p/beta"))
}

func TestGetDirectories_AbsentOrFile(t *testing.T) {
	h := newHost(t, true, appFile)

	got := h.GetDirectories("/missing")
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, h.GetDirectories("/a/b/c/app.ts"))
}

func TestGetDirectories_KeepsOriginalCasing(t *testing.T) {
	h := newHost(t, false, fixturehost.File("/Proj/Src/Main.TS", ""))
	assert.Equal(t, []string{"Main.TS"}, h.GetDirectories("/proj/src"))
}

func TestReadDirectory_RecursiveDescent(t *testing.T) {
	h := newHost(t, true, appFile, moduleFile, extraFile, libFile)

	assert.Equal(t, []string{
		"/a/b/c/app.ts",
		"/a/b/c/module.d.ts",
		"/a/b/c/d/extra.ts",
	}, h.ReadDirectory("/a/b/c", ".ts", nil))

	assert.Equal(t, []string{
		"/a/b/c/app.ts",
		"/a/b/c/module.d.ts",
		"/a/b/c/d/extra.ts",
		"/a/lib/lib.d.ts",
	}, h.ReadDirectory("/", ".ts", []string{}))
}

func TestReadDirectory_ExcludedFolderRemovesSubtree(t *testing.T) {
	h := newHost(t, false, appFile, moduleFile, extraFile, libFile)

	got := h.ReadDirectory("/", ".ts", []string{"/A/B"})
	assert.Equal(t, []string{"/a/lib/lib.d.ts"}, got)

	got = h.ReadDirectory("/a", ".d.ts", []string{"/a/lib/lib.d.ts"})
	assert.Equal(t, []string{"/a/b/c/module.d.ts"}, got)
}

func TestReadDirectory_AbsentPath(t *testing.T) {
	h := newHost(t, true, appFile)
	got := h.ReadDirectory("/nope", ".ts", nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReadFile_RoundTrip(t *testing.T) {
	entries := []fixturehost.Entry{appFile, moduleFile, extraFile, libFile,
		fixturehost.File("/bin/data.bin", "\x00\xff\r\n\tü"),
		fixturehost.File("/empty.txt", ""),
	}
	h := newHost(t, true, entries...)

	for _, e := range entries {
		assert.Equal(t, *e.Content, h.ReadFile(e.Path), "content of %s", e.Path)
	}
}

func TestReadFile_ContractViolations(t *testing.T) {
	h := newHost(t, true, appFile)

	requirePanicsWith(t, fixturehost.ErrContractViolation, func() { h.ReadFile("/a/b/c") })
	requirePanicsWith(t, fixturehost.ErrContractViolation, func() { h.ReadFile("/a/b/c/missing.ts") })
}

func TestMutatingStubs_NotSupported(t *testing.T) {
	h := newHost(t, true, appFile)

	stubs := map[string]func(){
		"writeFile":       func() { h.WriteFile("/a/new.ts", "x") },
		"write":           func() { h.Write("output") },
		"createDirectory": func() { h.CreateDirectory("/a/new") },
		"exit":            func() { h.Exit(0) },
	}
	for name, fn := range stubs {
		t.Run(name, func(t *testing.T) {
			requirePanicsWith(t, fixturehost.ErrNotSupported, fn)
		})
	}

	// nothing was created by the attempts
	assert.False(t, h.FileExists("/a/new.ts"))
	assert.False(t, h.DirectoryExists("/a/new"))
}

func TestWatchersAndTimers_NeverFire(t *testing.T) {
	h := newHost(t, true, appFile)
	fired := 0

	fw := h.WatchFile("/a/b/c/app.ts", func(string, bool) { fired++ })
	dw := h.WatchDirectory("/a", func(string) { fired++ }, true)
	timer := h.SetTimeout(func(...interface{}) { fired++ }, 0)

	require.NotNil(t, fw)
	require.NotNil(t, dw)
	require.NotNil(t, timer)
	assert.NotEqual(t, fw.ID(), dw.ID())

	// same canonical target yields the same watcher identity
	assert.Equal(t, fw.ID(), h.WatchFile(`\a\b\c\app.ts`, nil).ID())

	second := h.SetTimeout(func(...interface{}) { fired++ }, 10)
	assert.NotEqual(t, timer.ID(), second.ID())

	fw.Close()
	dw.Close()
	h.ClearTimeout(timer)

	assert.Zero(t, fired, "inert stubs must never deliver callbacks")
}

func TestConstantsAndIdentity(t *testing.T) {
	h := newHost(t, false, libFile)

	assert.Equal(t, "/a/lib", h.GetExecutingFilePath())
	assert.Equal(t, "/", h.GetCurrentDirectory())
	assert.Equal(t, "Some/Path/../x", h.ResolvePath("Some/Path/../x"))
	assert.Equal(t, "\n", h.NewLine())
	assert.Empty(t, h.Args())
	assert.False(t, h.UseCaseSensitiveFileNames())
}

func TestNew_Defaults(t *testing.T) {
	h, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, fixturehost.DefaultCurrentDirectory, h.GetCurrentDirectory())
	assert.Equal(t, fixturehost.DefaultExecutingFilePath, h.GetExecutingFilePath())
	assert.False(t, h.DirectoryExists("/"), "an empty fixture materializes nothing")
}

func TestNew_InvalidFixture(t *testing.T) {
	_, err := New(Options{}, fixturehost.File("/a", "x"), fixturehost.File("/a/b", "y"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fixturehost.ErrInvalidFixture))

	requirePanicsWith(t, fixturehost.ErrInvalidFixture, func() {
		MustNew(Options{}, fixturehost.Folder("/x"), fixturehost.File("/x", ""))
	})
}

func TestIndependentHosts(t *testing.T) {
	first := newHost(t, true, appFile)
	second := newHost(t, true, libFile)

	assert.True(t, first.FileExists(appFile.Path))
	assert.False(t, first.FileExists(libFile.Path))
	assert.True(t, second.FileExists(libFile.Path))
	assert.False(t, second.FileExists(appFile.Path))
}

func TestQueriesAreTraced(t *testing.T) {
	var buf bytes.Buffer
	h, err := New(Options{Logger: logging.NewConsoleLoggerTo(&buf, true)}, appFile)
	require.NoError(t, err)

	h.FileExists("/a/b/c/app.ts")
	h.ReadDirectory("/a", ".ts", nil)

	out := buf.String()
	assert.True(t, strings.Contains(out, "[VERBOSE] fixture built: 1 entries"), out)
	assert.True(t, strings.Contains(out, "fileExists /a/b/c/app.ts -> true"), out)
	assert.True(t, strings.Contains(out, `readDirectory /a ext=".ts" excludes=0 -> 1 files`), out)
}
