package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fixturehost/internal/host"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

// EntrySpec is the YAML form of a fixturehost.Entry.
type EntrySpec struct {
	Path    string  `yaml:"path"`
	Content *string `yaml:"content,omitempty"`
}

// Document is a fixture: host settings plus ordered entries.
type Document struct {
	CaseSensitive    bool        `yaml:"caseSensitive"`
	CurrentDirectory string      `yaml:"currentDirectory,omitempty"`
	ExecutingFile    string      `yaml:"executingFile,omitempty"`
	Entries          []EntrySpec `yaml:"entries"`
}

// Load decodes a document from r. Unknown keys are rejected so typos do not
// silently drop entries.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("%w: %v", fixturehost.ErrInvalidFixture, err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads a document from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", fixturehost.ErrFixtureNotFound, path)
		}
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	doc, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks the document's own shape. Tree conflicts are reported
// when the host is built.
func (d *Document) Validate() error {
	for i, e := range d.Entries {
		if strings.TrimSpace(e.Path) == "" {
			return fmt.Errorf("%w: entry %d has an empty path", fixturehost.ErrInvalidFixture, i)
		}
	}
	return nil
}

// HostEntries converts the document's entries, preserving order.
func (d *Document) HostEntries() []fixturehost.Entry {
	entries := make([]fixturehost.Entry, 0, len(d.Entries))
	for _, e := range d.Entries {
		entries = append(entries, fixturehost.Entry{Path: e.Path, Content: e.Content})
	}
	return entries
}

// Options returns host options for the document's settings.
func (d *Document) Options(logger fixturehost.Logger) host.Options {
	return host.Options{
		UseCaseSensitiveFileNames: d.CaseSensitive,
		ExecutingFilePath:         d.ExecutingFile,
		CurrentDirectory:          d.CurrentDirectory,
		Logger:                    logger,
	}
}

// Host builds a TestServerHost from the document.
func (d *Document) Host(logger fixturehost.Logger) (*host.TestServerHost, error) {
	return host.New(d.Options(logger), d.HostEntries()...)
}

// AddFile appends a file entry.
func (d *Document) AddFile(path, content string) {
	d.Entries = append(d.Entries, EntrySpec{Path: path, Content: &content})
}

// AddFolder appends a folder entry.
func (d *Document) AddFolder(path string) {
	d.Entries = append(d.Entries, EntrySpec{Path: path})
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode fixture: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode fixture: %w", err)
	}
	return buf.Bytes(), nil
}
