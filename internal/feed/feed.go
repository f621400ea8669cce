// Package feed edits the published podcast documents in place: feed.xml
// gains a new <item> per episode, index.html a new episode block. Both
// documents are hand-maintained, so edits splice text instead of
// re-serializing the whole file.
package feed

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/mcorpas/podarc/internal/domain"
)

var lastBuildDateRe = regexp.MustCompile(`<lastBuildDate>.*?</lastBuildDate>`)

// Editor rewrites feed.xml and index.html through an afero filesystem.
type Editor struct {
	fs        afero.Fs
	feedPath  string
	indexPath string
	author    string
	now       func() time.Time
}

func NewEditor(fs afero.Fs, feedPath, indexPath, author string) *Editor {
	return &Editor{
		fs:        fs,
		feedPath:  feedPath,
		indexPath: indexPath,
		author:    author,
		now:       time.Now,
	}
}

// AddItem inserts the episode's <item> before the first existing item (or
// before </channel> when the feed is empty) and refreshes lastBuildDate.
// The rest of the document is preserved byte for byte.
func (e *Editor) AddItem(ep *domain.Episode) error {
	data, err := afero.ReadFile(e.fs, e.feedPath)
	if err != nil {
		return fmt.Errorf("cannot read feed: %w", err)
	}
	text := string(data)

	buildDate := e.now().UTC().Format("Mon, 02 Jan 2006 15:04:05 -0700")
	text = lastBuildDateRe.ReplaceAllString(text,
		fmt.Sprintf("<lastBuildDate>%s</lastBuildDate>", buildDate))

	item, err := RenderItem(ep, e.author)
	if err != nil {
		return err
	}

	pos := strings.Index(text, "<item>")
	if pos == -1 {
		pos = strings.Index(text, "</channel>")
	}
	if pos == -1 {
		return fmt.Errorf("feed has no <item> and no </channel>, refusing to edit")
	}

	text = text[:pos] + item + "\n\n  " + text[pos:]

	if err := afero.WriteFile(e.fs, e.feedPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("cannot write feed: %w", err)
	}

	return nil
}
