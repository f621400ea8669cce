package feed

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/afero"

	"github.com/mcorpas/podarc/internal/domain"
)

var indexBlockTmpl = template.Must(template.New("episode").Parse(
	`    <div class="episode">
      <h2><a href="{{.Link}}">{{.Title}}</a></h2>
      <div class="meta">{{.Date}} &middot; {{.Minutes}} min</div>
      <div class="desc">{{.Description}}</div>
      <audio controls preload="none">
        <source src="{{.AudioPath}}" type="{{.MIMEType}}">
      </audio>
    </div>`))

type indexBlock struct {
	Title       string
	Link        string
	Date        string
	Minutes     int
	Description string
	AudioPath   string
	MIMEType    string
}

// AddIndexEntry prepends the episode block right after the <main> tag so the
// newest episode appears first on the archive page.
func (e *Editor) AddIndexEntry(ep *domain.Episode) error {
	data, err := afero.ReadFile(e.fs, e.indexPath)
	if err != nil {
		return fmt.Errorf("cannot read index page: %w", err)
	}
	text := string(data)

	var buf bytes.Buffer
	err = indexBlockTmpl.Execute(&buf, indexBlock{
		Title:       ep.Title,
		Link:        ep.Link,
		Date:        ep.PubDate.Format("2 January 2006"),
		Minutes:     ep.Duration / 60,
		Description: ep.Description,
		AudioPath:   ep.AudioPath,
		MIMEType:    ep.MIMEType,
	})
	if err != nil {
		return fmt.Errorf("cannot render episode block: %w", err)
	}

	mainPos := strings.Index(text, "<main>")
	if mainPos == -1 {
		return fmt.Errorf("index page has no <main> tag, refusing to edit")
	}

	insertPos := strings.Index(text[mainPos:], "\n")
	if insertPos == -1 {
		return fmt.Errorf("index page ends at <main>, refusing to edit")
	}
	insertPos += mainPos + 1

	text = text[:insertPos] + "\n" + buf.String() + "\n" + text[insertPos:]

	if err := afero.WriteFile(e.fs, e.indexPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("cannot write index page: %w", err)
	}

	return nil
}
