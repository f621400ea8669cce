package feed

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/mcorpas/podarc/internal/domain"
)

// Item mirrors the <item> layout of the published feed: RSS core fields
// plus the itunes/googleplay extensions podcast directories expect. The
// namespace prefixes are declared on the feed's root element.
type Item struct {
	XMLName     xml.Name  `xml:"item"`
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	PubDate     string    `xml:"pubDate"`
	GUID        GUID      `xml:"guid"`
	Creator     CDATA     `xml:"dc:creator"`
	Categories  []CDATA   `xml:"category"`
	Description CDATA     `xml:"description"`
	Content     CDATA     `xml:"content:encoded"`
	Enclosure   Enclosure `xml:"enclosure"`

	Duration int    `xml:"itunes:duration"`
	Author   string `xml:"itunes:author"`
	Explicit string `xml:"itunes:explicit"`
	Summary  CDATA  `xml:"itunes:summary"`
	Image    Image  `xml:"itunes:image"`

	PlayAuthor      string `xml:"googleplay:author"`
	PlayExplicit    string `xml:"googleplay:explicit"`
	PlayDescription string `xml:"googleplay:description"`
	PlayImage       Image  `xml:"googleplay:image"`
}

type GUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink string `xml:"isPermaLink,attr"`
}

type CDATA struct {
	Value string `xml:",cdata"`
}

type Enclosure struct {
	URL    string `xml:"url,attr"`
	Length int64  `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

type Image struct {
	Href string `xml:"href,attr"`
}

// NormalizeCategories guarantees the "Podcast" category is present,
// inserted after the lead category when there is one.
func NormalizeCategories(cats []string) []string {
	for _, c := range cats {
		if c == "Podcast" {
			return cats
		}
	}

	if len(cats) == 0 {
		return []string{"Podcast"}
	}

	out := make([]string, 0, len(cats)+1)
	out = append(out, cats[0], "Podcast")
	out = append(out, cats[1:]...)
	return out
}

// RenderItem produces the indented <item> fragment for an episode, prefixed
// with a title comment.
func RenderItem(ep *domain.Episode, author string) (string, error) {
	item := Item{
		Title:   ep.Title,
		Link:    ep.Link,
		PubDate: ep.PubDate.Format("Mon, 02 Jan 2006 15:04:05 -0700"),
		GUID:    GUID{Value: ep.GUID, IsPermaLink: "false"},
		Creator: CDATA{Value: author},

		Description: CDATA{Value: ep.Description},
		Content:     CDATA{Value: fmt.Sprintf("<p>%s</p>", ep.Description)},
		Enclosure: Enclosure{
			URL:    ep.AudioURL,
			Length: ep.Size,
			Type:   ep.MIMEType,
		},

		Duration: ep.Duration,
		Author:   author,
		Explicit: "false",
		Summary:  CDATA{Value: ep.Description},
		Image:    Image{Href: ep.Image},

		PlayAuthor:      author,
		PlayExplicit:    "false",
		PlayDescription: ep.Description,
		PlayImage:       Image{Href: ep.Image},
	}

	for _, c := range NormalizeCategories(ep.Categories) {
		item.Categories = append(item.Categories, CDATA{Value: c})
	}

	body, err := xml.MarshalIndent(item, "  ", "  ")
	if err != nil {
		return "", fmt.Errorf("could not render feed item: %w", err)
	}

	// Double hyphens are illegal inside XML comments
	safeTitle := strings.ReplaceAll(ep.Title, "--", "-")

	return fmt.Sprintf("\n  <!-- Episode: %s -->\n%s", safeTitle, body), nil
}
