package filesystem

import (
	"github.com/vvka-141/fixturehost/internal/files/pathutil"
)

// ExclusionSet holds canonical paths pruned from a search.
type ExclusionSet map[pathutil.Path]struct{}

// NewExclusionSet canonicalizes every path with canon.
func NewExclusionSet(canon pathutil.Canonicalizer, paths []string) ExclusionSet {
	set := make(ExclusionSet, len(paths))
	for _, p := range paths {
		set[canon.ToPath(p)] = struct{}{}
	}
	return set
}

// Contains reports whether p is excluded.
func (s ExclusionSet) Contains(p pathutil.Path) bool {
	_, ok := s[p]
	return ok
}

// Search returns the full paths of the files under the node at start whose
// path ends with ext. Excluded nodes are skipped and excluded folders are not
// descended into. The result follows a depth-first walk in insertion order
// and is empty when start is absent, is a file, or is itself excluded.
func (t *Tree) Search(start, ext string, excludes []string) []string {
	result := make([]string, 0)
	node, ok := t.Lookup(start)
	if !ok {
		return result
	}
	return Walk(node, ext, NewExclusionSet(t.canon, excludes), t.canon, result)
}

// Walk appends to result the matching files reachable from start.
func Walk(start Node, ext string, excludes ExclusionSet, canon pathutil.Canonicalizer, result []string) []string {
	folder, ok := start.(*Folder)
	if !ok || excludes.Contains(folder.Path()) {
		return result
	}

	for _, child := range folder.children {
		if excludes.Contains(child.Path()) {
			continue
		}
		switch n := child.(type) {
		case *Folder:
			result = Walk(n, ext, excludes, canon, result)
		case *File:
			if canon.HasExtension(n.FullPath(), ext) {
				result = append(result, n.FullPath())
			}
		}
	}

	return result
}
