package pathutil

import (
	"strings"
)

const separator = "/"

// Path is a canonical path. Two full paths denote the same node iff their
// Paths are equal.
type Path string

func (p Path) String() string { return string(p) }

// Canonicalizer maps path strings to canonical keys under a fixed case policy.
// It is immutable and safe for concurrent use.
type Canonicalizer struct {
	caseSensitive    bool
	currentDirectory string
}

// New creates a Canonicalizer. Relative inputs are resolved against
// currentDirectory.
func New(caseSensitive bool, currentDirectory string) Canonicalizer {
	return Canonicalizer{
		caseSensitive:    caseSensitive,
		currentDirectory: currentDirectory,
	}
}

// CaseSensitive reports the case policy.
func (c Canonicalizer) CaseSensitive() bool { return c.caseSensitive }

// CurrentDirectory returns the base used to resolve relative inputs.
func (c Canonicalizer) CurrentDirectory() string { return c.currentDirectory }

// ToPath returns the canonical key for fileName.
func (c Canonicalizer) ToPath(fileName string) Path {
	if c.caseSensitive {
		return Path(absolute(fileName, c.currentDirectory))
	}
	return Path(absolute(strings.ToLower(fileName), strings.ToLower(c.currentDirectory)))
}

// NormalizedAbsolute returns fileName as an absolute, normalized path with
// its original casing.
func (c Canonicalizer) NormalizedAbsolute(fileName string) string {
	return absolute(fileName, c.currentDirectory)
}

// HasExtension reports whether fullPath is longer than ext and ends with it,
// comparing under the case policy. An empty ext matches every non-empty path.
func (c Canonicalizer) HasExtension(fullPath, ext string) bool {
	if len(fullPath) <= len(ext) {
		return false
	}
	if c.caseSensitive {
		return strings.HasSuffix(fullPath, ext)
	}
	return strings.EqualFold(fullPath[len(fullPath)-len(ext):], ext)
}

func absolute(fileName, currentDirectory string) string {
	fileName = toSlash(fileName)
	if RootLength(fileName) == 0 {
		fileName = join(toSlash(currentDirectory), fileName)
	}
	return Normalize(fileName)
}

// join appends name to dir without doubling the separator after a root
// such as "/" or "c:/".
func join(dir, name string) string {
	if dir == "" || strings.HasSuffix(dir, separator) {
		return dir + name
	}
	return dir + separator + name
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", separator)
}

// Normalize converts separators to "/", resolves "." and ".." segments and
// drops a trailing separator. ".." never climbs above a root. Roots always
// end in "/", so "c:" and "//server/share" become "c:/" and
// "//server/share/", the same keys DirectoryOf climbs to.
func Normalize(p string) string {
	p = toSlash(p)
	rootLen := RootLength(p)
	root := p[:rootLen]
	if root != "" && !strings.HasSuffix(root, separator) {
		root += separator
	}

	var parts []string
	for _, part := range strings.Split(p[rootLen:], separator) {
		switch part {
		case "", ".":
		case "..":
			if len(parts) > 0 && parts[len(parts)-1] != ".." {
				parts = parts[:len(parts)-1]
			} else if rootLen == 0 {
				parts = append(parts, part)
			}
		default:
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return root
	}
	return root + strings.Join(parts, separator)
}

// RootLength returns the length of the root prefix of p: 1 for "/",
// 3 for "c:/", the full "//server/share/" prefix for UNC paths, 0 when p
// is relative.
func RootLength(p string) int {
	if p == "" {
		return 0
	}
	if p[0] == '/' {
		if len(p) == 1 || p[1] != '/' {
			return 1
		}
		p1 := strings.Index(p[2:], separator)
		if p1 < 0 {
			return len(p)
		}
		p1 += 2
		p2 := strings.Index(p[p1+1:], separator)
		if p2 < 0 {
			return len(p)
		}
		return p1 + 1 + p2 + 1
	}
	if len(p) >= 2 && p[1] == ':' && isDriveLetter(p[0]) {
		if len(p) >= 3 && p[2] == '/' {
			return 3
		}
		return 2
	}
	return 0
}

func isDriveLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsRooted reports whether p starts with a root.
func IsRooted(p string) bool {
	return RootLength(toSlash(p)) > 0
}

// DirectoryOf returns the parent directory of a normalized path. A root is
// its own parent, which makes it the fixed point callers use to stop
// climbing.
func DirectoryOf(p string) string {
	cut := strings.LastIndex(p, separator)
	if rootLen := RootLength(p); rootLen > cut {
		cut = rootLen
	}
	if cut < 0 {
		return ""
	}
	return p[:cut]
}

// BaseName returns the last segment of p; it is empty for a root.
func BaseName(p string) string {
	if RootLength(p) == len(p) {
		return ""
	}
	return p[strings.LastIndex(p, separator)+1:]
}
