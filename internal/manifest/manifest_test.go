package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifestIsValid(t *testing.T) {
	m := Default()
	require.NoError(t, m.Validate())

	// Indexes are the 1-based list positions
	for i, e := range m.Entries {
		assert.Equal(t, i+1, e.Index)
	}
}

func TestDefaultManifestDestinationsDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Default().Entries {
		assert.False(t, seen[e.Dest], "duplicate dest %s", e.Dest)
		seen[e.Dest] = true
	}
}

func TestValidateRejectsDuplicateDest(t *testing.T) {
	m := &Manifest{Entries: []Entry{
		{Index: 1, Title: "a", URL: "https://example.test/a.mp3", Dest: "audio/a.mp3"},
		{Index: 2, Title: "b", URL: "https://example.test/b.mp3", Dest: "audio/a.mp3"},
	}}

	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already used")
}

func TestValidateRejectsBadURLs(t *testing.T) {
	cases := []string{
		"",
		"audio/a.mp3",
		"ftp://example.test/a.mp3",
		"https:///no-host.mp3",
		"://corpasfoo.files.wordpress.com/a.mp3",
	}

	for _, u := range cases {
		m := &Manifest{Entries: []Entry{
			{Index: 1, Title: "a", URL: u, Dest: "audio/a.mp3"},
		}}
		assert.Error(t, m.Validate(), "url %q should be rejected", u)
	}
}

func TestValidateRejectsEmptyManifest(t *testing.T) {
	m := &Manifest{}
	assert.Error(t, m.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yml")
	content := `- title: "Episode One"
  url: "https://example.test/one.mp3"
  dest: "audio/2026-01-01-one.mp3"
- title: "Episode Two"
  url: "https://example.test/two.wav"
  dest: "audio/2026-02-01-two.wav"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Entries, 2)

	assert.Equal(t, 1, m.Entries[0].Index)
	assert.Equal(t, "Episode One", m.Entries[0].Title)
	assert.Equal(t, 2, m.Entries[1].Index)
	assert.Equal(t, "audio/2026-02-01-two.wav", m.Entries[1].Dest)
}

func TestLoadRejectsInvalidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yml")
	content := `- title: "Episode One"
  url: "not-a-url"
  dest: "audio/one.mp3"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
