package host

import (
	"fmt"
	"sync/atomic"

	"github.com/vvka-141/fixturehost/internal/files/filesystem"
	"github.com/vvka-141/fixturehost/internal/files/pathutil"
	"github.com/vvka-141/fixturehost/internal/logging"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

// Options fixes the host's environment at construction.
type Options struct {
	UseCaseSensitiveFileNames bool
	ExecutingFilePath         string
	CurrentDirectory          string

	// Logger receives a Verbose line per query. Defaults to a NullLogger.
	Logger fixturehost.Logger
}

// TestServerHost answers file system queries from a fixture tree.
// It is safe for concurrent use because nothing mutates after New returns.
type TestServerHost struct {
	opts   Options
	canon  pathutil.Canonicalizer
	tree   *filesystem.Tree
	logger fixturehost.Logger

	// timers numbers SetTimeout handles; it is the only field that changes
	// after New.
	timers atomic.Uint64
}

var _ fixturehost.ServerHost = (*TestServerHost)(nil)

// New builds the fixture tree from entries, in order.
// Returns an error wrapping fixturehost.ErrInvalidFixture if the entries
// conflict.
func New(opts Options, entries ...fixturehost.Entry) (*TestServerHost, error) {
	if opts.CurrentDirectory == "" {
		opts.CurrentDirectory = fixturehost.DefaultCurrentDirectory
	}
	if opts.ExecutingFilePath == "" {
		opts.ExecutingFilePath = fixturehost.DefaultExecutingFilePath
	}
	if !pathutil.IsRooted(opts.CurrentDirectory) {
		return nil, fmt.Errorf("%w: current directory %q must be absolute", fixturehost.ErrInvalidFixture, opts.CurrentDirectory)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	canon := pathutil.New(opts.UseCaseSensitiveFileNames, opts.CurrentDirectory)
	tree, err := filesystem.Build(canon, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build fixture: %w", err)
	}

	logger.Verbose("fixture built: %d entries, %d nodes, caseSensitive=%t, cwd=%s",
		len(entries), tree.Len(), opts.UseCaseSensitiveFileNames, opts.CurrentDirectory)

	return &TestServerHost{
		opts:   opts,
		canon:  canon,
		tree:   tree,
		logger: logger,
	}, nil
}

// MustNew is like New but panics if the fixture is invalid.
func MustNew(opts Options, entries ...fixturehost.Entry) *TestServerHost {
	h, err := New(opts, entries...)
	if err != nil {
		panic(err)
	}
	return h
}

// Tree returns the fixture tree for adapters such as Tree.FS.
func (h *TestServerHost) Tree() *filesystem.Tree {
	return h.tree
}

func (h *TestServerHost) Args() []string                  { return []string{} }
func (h *TestServerHost) NewLine() string                 { return fixturehost.NewLine }
func (h *TestServerHost) UseCaseSensitiveFileNames() bool { return h.opts.UseCaseSensitiveFileNames }
func (h *TestServerHost) ResolvePath(path string) string  { return path }
func (h *TestServerHost) GetCurrentDirectory() string     { return h.opts.CurrentDirectory }
func (h *TestServerHost) GetExecutingFilePath() string    { return h.opts.ExecutingFilePath }

func (h *TestServerHost) lookup(path string) (filesystem.Node, bool) {
	return h.tree.Store().Lookup(h.canon.ToPath(path))
}

// FileExists reports whether path names a file.
func (h *TestServerHost) FileExists(path string) bool {
	node, ok := h.lookup(path)
	exists := ok && node.Kind() == filesystem.KindFile
	h.logger.Verbose("fileExists %s -> %t", path, exists)
	return exists
}

// DirectoryExists reports whether path names a folder.
func (h *TestServerHost) DirectoryExists(path string) bool {
	node, ok := h.lookup(path)
	exists := ok && node.Kind() == filesystem.KindFolder
	h.logger.Verbose("directoryExists %s -> %t", path, exists)
	return exists
}

// GetDirectories returns the base names of every immediate child of path,
// files included, in insertion order. Absent paths and files yield an empty
// slice.
func (h *TestServerHost) GetDirectories(path string) []string {
	names := make([]string, 0)
	node, ok := h.lookup(path)
	if !ok {
		h.logger.Verbose("getDirectories %s -> absent", path)
		return names
	}

	if folder, isFolder := node.(*filesystem.Folder); isFolder {
		for _, child := range folder.Children() {
			names = append(names, pathutil.BaseName(child.FullPath()))
		}
	}
	h.logger.Verbose("getDirectories %s -> %d names", path, len(names))
	return names
}

// ReadDirectory returns the full paths of files below path whose names end
// with extension. Every exclude is canonicalized before matching; an excluded
// folder contributes nothing from its subtree.
func (h *TestServerHost) ReadDirectory(path, extension string, excludes []string) []string {
	result := h.tree.Search(path, extension, excludes)
	h.logger.Verbose("readDirectory %s ext=%q excludes=%d -> %d files", path, extension, len(excludes), len(result))
	return result
}

// ReadFile returns the content of the file at path.
// Panics with an error wrapping fixturehost.ErrContractViolation when path is
// absent or is a folder.
func (h *TestServerHost) ReadFile(path string) string {
	key := h.canon.ToPath(path)
	if !h.tree.Store().Contains(key) {
		panic(fmt.Errorf("%w: readFile %s: no such file in fixture", fixturehost.ErrContractViolation, path))
	}
	file, ok := h.tree.Store().Get(key).(*filesystem.File)
	if !ok {
		panic(fmt.Errorf("%w: readFile %s: path is a folder", fixturehost.ErrContractViolation, path))
	}
	h.logger.Verbose("readFile %s -> %d bytes", path, len(file.Content()))
	return file.Content()
}
