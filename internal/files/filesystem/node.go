package filesystem

import (
	"github.com/vvka-141/fixturehost/internal/files/pathutil"
)

// Kind discriminates the node variants.
type Kind int

const (
	KindFile Kind = iota + 1
	KindFolder
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	default:
		return "unknown"
	}
}

// Node is a tree entry: either a *File or a *Folder. The set of
// implementations is closed; switch on the concrete type or on Kind.
type Node interface {
	Kind() Kind
	// Path is the canonical key used for identity and exclusion matching.
	Path() pathutil.Path
	// FullPath is the absolute path with its original casing.
	FullPath() string

	node()
}

// File is a leaf holding content.
type File struct {
	path     pathutil.Path
	fullPath string
	content  string
}

func (f *File) Kind() Kind          { return KindFile }
func (f *File) Path() pathutil.Path { return f.path }
func (f *File) FullPath() string    { return f.fullPath }
func (f *File) Content() string     { return f.content }
func (f *File) node()               {}

// Folder holds its children in first-insertion order. Children carry no
// reference back to the folder; the parent of a node is recomputed from its
// path.
type Folder struct {
	path     pathutil.Path
	fullPath string
	children []Node
}

func (f *Folder) Kind() Kind          { return KindFolder }
func (f *Folder) Path() pathutil.Path { return f.path }
func (f *Folder) FullPath() string    { return f.fullPath }
func (f *Folder) node()               {}

// Children returns a copy of the children in insertion order.
func (f *Folder) Children() []Node {
	out := make([]Node, len(f.children))
	copy(out, f.children)
	return out
}

func (f *Folder) appendChild(n Node) {
	f.children = append(f.children, n)
}
