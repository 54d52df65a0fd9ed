package fixture

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/vvka-141/fixturehost/internal/files/pathutil"
)

// DefaultIgnore lists directory and file names skipped by Capture unless
// CaptureOptions.Ignore is set.
var DefaultIgnore = []string{".git", "node_modules", ".DS_Store"}

// CaptureOptions controls Capture.
type CaptureOptions struct {
	// MountAt is the fixture path the captured root maps to. Defaults to "/".
	MountAt string

	// Ignore lists base names to skip, with their subtrees. Nil means DefaultIgnore.
	Ignore []string

	CaseSensitive bool
}

// Capture walks root inside fsys and records every file as a file entry and
// every empty directory as a folder entry, in lexical walk order. Use it with
// os.DirFS, an embed.FS, or afero.NewIOFS to turn an existing tree into a
// fixture.
func Capture(fsys fs.FS, root string, opts CaptureOptions) (*Document, error) {
	mount := opts.MountAt
	if mount == "" {
		mount = "/"
	}
	if !pathutil.IsRooted(mount) {
		mount = "/" + mount
	}
	mount = pathutil.Normalize(mount)

	ignore := opts.Ignore
	if ignore == nil {
		ignore = DefaultIgnore
	}
	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}

	doc := &Document{
		CaseSensitive:    opts.CaseSensitive,
		CurrentDirectory: mount,
	}

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking %s: %w", p, err)
		}

		if p != root && skip[d.Name()] {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := mountPath(mount, root, p)
		if d.IsDir() {
			entries, err := fs.ReadDir(fsys, p)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", p, err)
			}
			kept := 0
			for _, e := range entries {
				if !skip[e.Name()] {
					kept++
				}
			}
			// a directory holding only ignored names is still captured
			if kept == 0 {
				doc.AddFolder(target)
			}
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		doc.AddFile(target, string(data))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func mountPath(mount, root, p string) string {
	rel := p
	if root != "." {
		rel = p[len(root):]
	}
	return pathutil.Normalize(path.Join(mount, rel))
}
