package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcorpas/podarc/internal/domain"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:googleplay="http://www.google.com/schemas/play-podcasts/1.0">
<channel>
  <title>Personal Genomics Zone</title>
  <link>https://manuelcorpas.github.io/podcast</link>
  <lastBuildDate>Mon, 01 Jan 2024 00:00:00 +0000</lastBuildDate>
  <item>
    <title>Old Episode</title>
  </item>
</channel>
</rss>
`

const indexFixture = `<!DOCTYPE html>
<html>
  <body>
    <main>
    <div class="episode">
      <h2><a href="https://example.test/old">Old Episode</a></h2>
    </div>
    </main>
  </body>
</html>
`

func testEpisode() *domain.Episode {
	return &domain.Episode{
		ID:          domain.EpisodeID("audio/2026-01-25-llms-academic-writing.mp3"),
		Title:       "LLMs and Academic Writing",
		Link:        "https://manuelcorpas.com/2026/01/25/llms-academic-writing/",
		GUID:        "https://manuelcorpas.github.io/podcast/audio/2026-01-25-llms-academic-writing.mp3",
		Description: "How large language models are reshaping scholarly writing.",
		AudioPath:   "audio/2026-01-25-llms-academic-writing.mp3",
		AudioURL:    "https://manuelcorpas.github.io/podcast/audio/2026-01-25-llms-academic-writing.mp3",
		MIMEType:    "audio/mpeg",
		Size:        12345678,
		Duration:    1830,
		PubDate:     time.Date(2026, 1, 25, 12, 0, 0, 0, time.UTC),
		Categories:  []string{"AI", "Technology"},
		Image:       "https://example.test/artwork.jpg",
	}
}

func testEditor(t *testing.T) (*Editor, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "feed.xml", []byte(feedFixture), 0644))
	require.NoError(t, afero.WriteFile(fs, "index.html", []byte(indexFixture), 0644))

	e := NewEditor(fs, "feed.xml", "index.html", "Manuel Corpas")
	e.now = func() time.Time { return time.Date(2026, 1, 25, 14, 30, 0, 0, time.UTC) }

	return e, fs
}

func TestAddItemInsertsBeforeExistingItems(t *testing.T) {
	e, fs := testEditor(t)
	require.NoError(t, e.AddItem(testEpisode()))

	data, err := afero.ReadFile(fs, "feed.xml")
	require.NoError(t, err)
	text := string(data)

	newPos := strings.Index(text, "LLMs and Academic Writing")
	oldPos := strings.Index(text, "Old Episode")
	require.NotEqual(t, -1, newPos)
	require.NotEqual(t, -1, oldPos)
	assert.Less(t, newPos, oldPos, "new item must precede the old one")

	// Surrounding document preserved
	assert.Contains(t, text, "<title>Personal Genomics Zone</title>")
	assert.Contains(t, text, "</rss>")
}

func TestAddItemUpdatesLastBuildDate(t *testing.T) {
	e, fs := testEditor(t)
	require.NoError(t, e.AddItem(testEpisode()))

	data, err := afero.ReadFile(fs, "feed.xml")
	require.NoError(t, err)

	assert.NotContains(t, string(data), "Mon, 01 Jan 2024")
	assert.Contains(t, string(data), "<lastBuildDate>Sun, 25 Jan 2026 14:30:00 +0000</lastBuildDate>")
}

func TestAddItemEmptyChannel(t *testing.T) {
	empty := strings.Replace(feedFixture, "  <item>\n    <title>Old Episode</title>\n  </item>\n", "", 1)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "feed.xml", []byte(empty), 0644))

	e := NewEditor(fs, "feed.xml", "index.html", "Manuel Corpas")
	require.NoError(t, e.AddItem(testEpisode()))

	data, err := afero.ReadFile(fs, "feed.xml")
	require.NoError(t, err)
	text := string(data)

	itemPos := strings.Index(text, "<item>")
	channelEnd := strings.Index(text, "</channel>")
	require.NotEqual(t, -1, itemPos)
	assert.Less(t, itemPos, channelEnd)
}

func TestRenderItem(t *testing.T) {
	out, err := RenderItem(testEpisode(), "Manuel Corpas")
	require.NoError(t, err)

	assert.Contains(t, out, "<!-- Episode: LLMs and Academic Writing -->")
	assert.Contains(t, out, `<guid isPermaLink="false">`)
	assert.Contains(t, out, `<enclosure url="https://manuelcorpas.github.io/podcast/audio/2026-01-25-llms-academic-writing.mp3" length="12345678" type="audio/mpeg">`)
	assert.Contains(t, out, "<itunes:duration>1830</itunes:duration>")
	assert.Contains(t, out, "<dc:creator><![CDATA[Manuel Corpas]]></dc:creator>")
	assert.Contains(t, out, "<pubDate>Sun, 25 Jan 2026 12:00:00 +0000</pubDate>")

	// Podcast category injected after the lead category
	aiPos := strings.Index(out, "<![CDATA[AI]]>")
	podPos := strings.Index(out, "<![CDATA[Podcast]]>")
	techPos := strings.Index(out, "<![CDATA[Technology]]>")
	require.NotEqual(t, -1, podPos)
	assert.Less(t, aiPos, podPos)
	assert.Less(t, podPos, techPos)
}

func TestRenderItemSanitizesComment(t *testing.T) {
	ep := testEpisode()
	ep.Title = "Genomes -- A Retrospective"

	out, err := RenderItem(ep, "Manuel Corpas")
	require.NoError(t, err)

	assert.Contains(t, out, "<!-- Episode: Genomes - A Retrospective -->")
}

func TestNormalizeCategories(t *testing.T) {
	assert.Equal(t, []string{"Podcast"}, NormalizeCategories(nil))
	assert.Equal(t, []string{"AI", "Podcast"}, NormalizeCategories([]string{"AI"}))
	assert.Equal(t, []string{"AI", "Podcast", "Tech"}, NormalizeCategories([]string{"AI", "Tech"}))
	assert.Equal(t, []string{"AI", "Podcast"}, NormalizeCategories([]string{"AI", "Podcast"}))
}

func TestAddIndexEntryPrependsAfterMain(t *testing.T) {
	e, fs := testEditor(t)
	require.NoError(t, e.AddIndexEntry(testEpisode()))

	data, err := afero.ReadFile(fs, "index.html")
	require.NoError(t, err)
	text := string(data)

	newPos := strings.Index(text, "LLMs and Academic Writing")
	oldPos := strings.Index(text, "Old Episode")
	require.NotEqual(t, -1, newPos)
	assert.Less(t, newPos, oldPos)

	assert.Contains(t, text, "25 January 2026 &middot; 30 min")
	assert.Contains(t, text, `<source src="audio/2026-01-25-llms-academic-writing.mp3" type="audio/mpeg">`)
}

func TestAddIndexEntryMissingMain(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "index.html", []byte("<html></html>"), 0644))

	e := NewEditor(fs, "feed.xml", "index.html", "Manuel Corpas")
	assert.Error(t, e.AddIndexEntry(testEpisode()))
}
