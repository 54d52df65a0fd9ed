// Package files groups the virtual file system used by fixture hosts.
//
// Sub-packages:
//   - pathutil: canonical path keys under a case policy and current directory
//   - filesystem: the node store, tree materializer, directory walker, and
//     io/fs and afero adapters
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/fixturehost/internal/files/filesystem"
//	    "github.com/vvka-141/fixturehost/internal/files/pathutil"
//	)
//
//	canon := pathutil.New(false, "/")
//	tree, err := filesystem.Build(canon, entries)
//	tsFiles := tree.Search("/a", ".ts", []string{"/a/node_modules"})
//
// # Organization
//
// pathutil has no dependencies on the tree; filesystem consumes pathutil and
// is in turn consumed by the host facade in internal/host.
package files
