// Package filesystem implements the virtual file system behind a fixture
// host: a path-keyed store of nodes, the materializer that builds folders and
// their ancestors from descriptors, and the directory walker used for
// filtered recursive search.
//
// Key types:
//   - Node: sealed variant, either *File (content) or *Folder (ordered children)
//   - Store: canonical path -> Node, one node per key
//   - Tree: built once by Build, read-only afterwards
//
// Adapters:
//   - Tree.FS: io/fs view for standard tooling
//   - CopyToAfero: writes a tree into any afero.Fs, memory or OS backed
package filesystem
