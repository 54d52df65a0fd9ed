package filesystem

import (
	"fmt"

	"github.com/vvka-141/fixturehost/internal/files/pathutil"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

// Tree is the immutable virtual file system built from a fixture. All
// exported methods are reads, so a built Tree is safe for concurrent use.
type Tree struct {
	canon pathutil.Canonicalizer
	store *Store
	roots []*Folder
}

// Build materializes entries in order. Files create their ancestor folders;
// folder-only entries create an empty folder chain. It fails with
// ErrInvalidFixture when an entry would put a file and a folder at the same
// canonical path or declare the same file twice.
func Build(canon pathutil.Canonicalizer, entries []fixturehost.Entry) (*Tree, error) {
	t := &Tree{
		canon: canon,
		store: NewStore(),
	}

	for i, entry := range entries {
		if err := t.add(entry); err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, entry.Path, err)
		}
	}

	return t, nil
}

func (t *Tree) add(entry fixturehost.Entry) error {
	fullPath := t.canon.NormalizedAbsolute(entry.Path)

	if !entry.IsFile() {
		_, err := t.ensureFolder(fullPath)
		return err
	}

	parentPath := pathutil.DirectoryOf(fullPath)
	if parentPath == fullPath {
		return fmt.Errorf("%w: root %q cannot be a file", fixturehost.ErrInvalidFixture, fullPath)
	}

	key := t.canon.ToPath(fullPath)
	if existing, ok := t.store.Lookup(key); ok {
		return fmt.Errorf("%w: %q already declared as a %s", fixturehost.ErrInvalidFixture, fullPath, existing.Kind())
	}

	parent, err := t.ensureFolder(parentPath)
	if err != nil {
		return err
	}

	file := &File{
		path:     key,
		fullPath: fullPath,
		content:  *entry.Content,
	}
	t.store.Set(key, file)
	parent.appendChild(file)
	return nil
}

// ensureFolder returns the folder at fullPath, creating it and every missing
// ancestor and linking each new folder into its parent.
func (t *Tree) ensureFolder(fullPath string) (*Folder, error) {
	key := t.canon.ToPath(fullPath)
	if existing, ok := t.store.Lookup(key); ok {
		folder, isFolder := existing.(*Folder)
		if !isFolder {
			return nil, fmt.Errorf("%w: %q is a file and cannot contain entries", fixturehost.ErrInvalidFixture, existing.FullPath())
		}
		return folder, nil
	}

	folder := &Folder{
		path:     key,
		fullPath: fullPath,
	}
	t.store.Set(key, folder)

	parentPath := pathutil.DirectoryOf(fullPath)
	if parentPath == fullPath {
		t.roots = append(t.roots, folder)
		return folder, nil
	}

	parent, err := t.ensureFolder(parentPath)
	if err != nil {
		return nil, err
	}
	parent.appendChild(folder)
	return folder, nil
}

// Canonicalizer returns the path policy the tree was built with.
func (t *Tree) Canonicalizer() pathutil.Canonicalizer {
	return t.canon
}

// Lookup canonicalizes name and returns the node stored there.
func (t *Tree) Lookup(name string) (Node, bool) {
	return t.store.Lookup(t.canon.ToPath(name))
}

// Store exposes the path-keyed store for read-only inspection.
func (t *Tree) Store() *Store {
	return t.store
}

// Roots returns the root folders in the order they were materialized.
func (t *Tree) Roots() []*Folder {
	out := make([]*Folder, len(t.roots))
	copy(out, t.roots)
	return out
}

// Len returns the number of nodes, folders included.
func (t *Tree) Len() int {
	return t.store.Len()
}
