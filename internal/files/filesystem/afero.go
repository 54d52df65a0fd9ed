package filesystem

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/vvka-141/fixturehost/internal/files/pathutil"
)

// CopyToAfero writes every folder and file of t into dst beneath base, so
// code that expects a real file system can read the same fixture. Drive and
// UNC roots are mapped to plain directories ("c:/" becomes "c",
// "//server/share/" becomes "server/share").
func CopyToAfero(t *Tree, dst afero.Fs, base string) error {
	for _, root := range t.roots {
		if err := copyNode(root, dst, base); err != nil {
			return err
		}
	}
	return nil
}

func copyNode(node Node, dst afero.Fs, base string) error {
	target := MirrorPath(base, node.FullPath())

	switch n := node.(type) {
	case *Folder:
		if err := dst.MkdirAll(target, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", target, err)
		}
		for _, child := range n.children {
			if err := copyNode(child, dst, base); err != nil {
				return err
			}
		}
	case *File:
		if err := afero.WriteFile(dst, target, []byte(n.content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}
	}
	return nil
}

// MirrorPath returns where fullPath lands under base when a tree is copied
// out with CopyToAfero.
func MirrorPath(base, fullPath string) string {
	rootLen := pathutil.RootLength(fullPath)
	root := strings.Trim(strings.TrimSuffix(fullPath[:rootLen], ":/"), "/:")
	rel := strings.Trim(fullPath[rootLen:], "/")
	return filepath.Join(base, filepath.FromSlash(root), filepath.FromSlash(rel))
}
