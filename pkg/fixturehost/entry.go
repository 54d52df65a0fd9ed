package fixturehost

// Entry describes one path of a fixture. An entry with Content becomes a file
// (and materializes its ancestor folders); an entry without Content becomes
// an empty folder chain.
type Entry struct {
	Path    string
	Content *string
}

// File returns a file descriptor holding content.
func File(path, content string) Entry {
	return Entry{Path: path, Content: &content}
}

// Folder returns a folder-only descriptor.
func Folder(path string) Entry {
	return Entry{Path: path}
}

// IsFile reports whether the entry describes a file.
func (e Entry) IsFile() bool {
	return e.Content != nil
}
