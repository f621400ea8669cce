package manifest

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one remote audio file and where it lands in the archive.
type Entry struct {
	// Index is the 1-based position, used only for progress output.
	Index int    `yaml:"-"`
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
	// Dest is relative to the archive root, e.g. audio/2026-01-25-slug.mp3
	Dest string `yaml:"dest"`
}

// Manifest is the fixed, ordered list of downloads. Order defines the only
// processing order; entries are never reordered or prioritized.
type Manifest struct {
	Entries []Entry
}

// Load reads a YAML manifest file. The built-in table (Default) is used when
// no file is given.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read manifest: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("could not decode manifest: %w", err)
	}

	m := &Manifest{Entries: entries}
	m.number()

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// number assigns the 1-based sequence indexes from list position.
func (m *Manifest) number() {
	for i := range m.Entries {
		m.Entries[i].Index = i + 1
	}
}

// Validate checks the manifest invariants: destinations pairwise distinct,
// every source a syntactically valid absolute HTTP(S) URL.
func (m *Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return fmt.Errorf("manifest is empty")
	}

	seen := make(map[string]int, len(m.Entries))

	for _, e := range m.Entries {
		if e.Title == "" {
			return fmt.Errorf("entry %d: title is required", e.Index)
		}

		if e.Dest == "" {
			return fmt.Errorf("entry %d: dest is required", e.Index)
		}

		if prev, ok := seen[e.Dest]; ok {
			return fmt.Errorf("entry %d: dest %q already used by entry %d", e.Index, e.Dest, prev)
		}
		seen[e.Dest] = e.Index

		u, err := url.Parse(e.URL)
		if err != nil {
			return fmt.Errorf("entry %d: invalid url %q: %w", e.Index, e.URL, err)
		}

		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("entry %d: url %q is not an absolute http(s) url", e.Index, e.URL)
		}
	}

	return nil
}
