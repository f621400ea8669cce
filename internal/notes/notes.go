// Package notes parses episode show-notes posts: markdown documents with a
// YAML frontmatter header carrying the episode metadata, and a body that
// becomes the feed item description.
package notes

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/frontmatter"
)

// ShowNotes is the parsed result. Date is the publication day; Body is the
// rendered HTML description.
type ShowNotes struct {
	Title      string
	Link       string
	Date       time.Time
	Categories []string
	Image      string
	Body       string
}

type meta struct {
	Title      string `yaml:"title"`
	Link       string `yaml:"link"`
	Date       string `yaml:"date"`
	Categories string `yaml:"categories"`
	Image      string `yaml:"image"`
}

// Parse reads a show-notes markdown file from fs.
func Parse(fs afero.Fs, path string) (*ShowNotes, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read show notes: %w", err)
	}
	return parseBytes(src)
}

func parseBytes(src []byte) (*ShowNotes, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			&frontmatter.Extender{},
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	var buf bytes.Buffer
	ctx := parser.NewContext()
	if err := md.Convert(src, &buf, parser.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("cannot render show notes: %w", err)
	}

	fm := frontmatter.Get(ctx)
	if fm == nil {
		return nil, fmt.Errorf("show notes have no frontmatter")
	}

	var m meta
	if err := fm.Decode(&m); err != nil {
		return nil, fmt.Errorf("cannot decode frontmatter: %w", err)
	}

	if m.Title == "" {
		return nil, fmt.Errorf("show notes frontmatter is missing a title")
	}

	n := &ShowNotes{
		Title: m.Title,
		Link:  m.Link,
		Image: m.Image,
		Body:  strings.TrimSpace(buf.String()),
	}

	if m.Date != "" {
		d, err := time.Parse("2006-01-02", m.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q in frontmatter: %w", m.Date, err)
		}
		n.Date = d
	}

	for _, c := range strings.Split(m.Categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			n.Categories = append(n.Categories, c)
		}
	}

	return n, nil
}
