package notes

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showNotesFixture = `---
title: "LLMs and Academic Writing"
link: "https://manuelcorpas.com/2026/01/25/llms-academic-writing/"
date: "2026-01-25"
categories: "AI, Technology"
image: "https://example.test/artwork.jpg"
---

How large language models are reshaping **scholarly writing**.
`

func TestParse(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "notes.md", []byte(showNotesFixture), 0644))

	n, err := Parse(fs, "notes.md")
	require.NoError(t, err)

	assert.Equal(t, "LLMs and Academic Writing", n.Title)
	assert.Equal(t, "https://manuelcorpas.com/2026/01/25/llms-academic-writing/", n.Link)
	assert.Equal(t, time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC), n.Date)
	assert.Equal(t, []string{"AI", "Technology"}, n.Categories)
	assert.Equal(t, "https://example.test/artwork.jpg", n.Image)

	// Markdown body rendered to HTML
	assert.Contains(t, n.Body, "<strong>scholarly writing</strong>")
}

func TestParseMissingFrontmatter(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "notes.md", []byte("# Just a post\n"), 0644))

	_, err := Parse(fs, "notes.md")
	assert.Error(t, err)
}

func TestParseMissingTitle(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := "---\ndate: \"2026-01-25\"\n---\n\nBody.\n"
	require.NoError(t, afero.WriteFile(fs, "notes.md", []byte(src), 0644))

	_, err := Parse(fs, "notes.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestParseBadDate(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := "---\ntitle: \"Ep\"\ndate: \"25/01/2026\"\n---\n\nBody.\n"
	require.NoError(t, afero.WriteFile(fs, "notes.md", []byte(src), 0644))

	_, err := Parse(fs, "notes.md")
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(afero.NewMemMapFs(), "absent.md")
	assert.Error(t, err)
}
