package filesystem

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/vvka-141/fixturehost/internal/files/pathutil"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FS is a read-only io/fs view of a Tree rooted at "/". Names are resolved
// through the tree's canonicalizer, so a case-insensitive tree also serves
// names in any casing. Directory listings are sorted by name as io/fs
// requires; use Folder.Children for insertion order.
type FS struct {
	tree *Tree
}

var (
	_ fs.FS         = FS{}
	_ fs.ReadDirFS  = FS{}
	_ fs.ReadFileFS = FS{}
	_ fs.StatFS     = FS{}
)

// FS returns the io/fs view of the tree.
func (t *Tree) FS() FS {
	return FS{tree: t}
}

func (f FS) resolve(op, name string) (Node, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	// io/fs names are slash-only; a backslash is part of an element name,
	// and fixture names never contain one.
	if strings.ContainsRune(name, '\\') {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}

	full := "/"
	if name != "." {
		full += name
	}

	node, ok := f.tree.Lookup(full)
	if !ok {
		if name == "." {
			// an empty fixture still has a root to list
			return &Folder{path: f.tree.canon.ToPath(full), fullPath: full}, nil
		}
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return node, nil
}

// Open implements fs.FS.
func (f FS) Open(name string) (fs.File, error) {
	node, err := f.resolve("open", name)
	if err != nil {
		return nil, err
	}

	info := newNodeInfo(path.Base(name), node)
	switch n := node.(type) {
	case *File:
		return &openFile{info: info, Reader: bytes.NewReader([]byte(n.content))}, nil
	case *Folder:
		return &openDir{info: info, name: name, entries: dirEntries(n)}, nil
	default:
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
}

// ReadFile implements fs.ReadFileFS.
func (f FS) ReadFile(name string) ([]byte, error) {
	node, err := f.resolve("read", name)
	if err != nil {
		return nil, err
	}
	file, ok := node.(*File)
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return []byte(file.content), nil
}

// ReadDir implements fs.ReadDirFS.
func (f FS) ReadDir(name string) ([]fs.DirEntry, error) {
	node, err := f.resolve("readdir", name)
	if err != nil {
		return nil, err
	}
	folder, ok := node.(*Folder)
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	return dirEntries(folder), nil
}

// Stat implements fs.StatFS.
func (f FS) Stat(name string) (fs.FileInfo, error) {
	node, err := f.resolve("stat", name)
	if err != nil {
		return nil, err
	}
	return newNodeInfo(path.Base(name), node), nil
}

func dirEntries(folder *Folder) []fs.DirEntry {
	entries := make([]fs.DirEntry, 0, len(folder.children))
	for _, child := range folder.children {
		entries = append(entries, fs.FileInfoToDirEntry(newNodeInfo(pathutil.BaseName(child.FullPath()), child)))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries
}

// nodeInfo implements fs.FileInfo for tree nodes. Fixtures carry no
// timestamps, so every node reports the zero time.
type nodeInfo struct {
	name string
	node Node
}

func newNodeInfo(name string, node Node) *nodeInfo {
	return &nodeInfo{name: name, node: node}
}

func (i *nodeInfo) Name() string       { return i.name }
func (i *nodeInfo) ModTime() time.Time { return time.Time{} }
func (i *nodeInfo) IsDir() bool        { return i.node.Kind() == KindFolder }
func (i *nodeInfo) Sys() interface{}   { return nil }

func (i *nodeInfo) Size() int64 {
	if f, ok := i.node.(*File); ok {
		return int64(len(f.content))
	}
	return 0
}

func (i *nodeInfo) Mode() fs.FileMode {
	if i.IsDir() {
		return fs.ModeDir | 0555
	}
	return 0444
}

type openFile struct {
	info *nodeInfo
	*bytes.Reader
}

func (f *openFile) Stat() (fs.FileInfo, error) { return f.info, nil }
func (f *openFile) Close() error               { return nil }

type openDir struct {
	info    *nodeInfo
	name    string
	entries []fs.DirEntry
	offset  int
}

func (d *openDir) Stat() (fs.FileInfo, error) { return d.info, nil }
func (d *openDir) Close() error               { return nil }

func (d *openDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.name, Err: fs.ErrInvalid}
}

// ReadDir implements fs.ReadDirFile.
func (d *openDir) ReadDir(n int) ([]fs.DirEntry, error) {
	remaining := d.entries[d.offset:]
	if n <= 0 {
		d.offset = len(d.entries)
		return remaining, nil
	}
	if len(remaining) == 0 {
		return nil, io.EOF
	}
	if n > len(remaining) {
		n = len(remaining)
	}
	d.offset += n
	return remaining[:n], nil
}
