package store

import (
	"encoding/json"
	"time"

	"github.com/mcorpas/podarc/internal/domain"
)

// episodeDBO maps to the episodes table
type episodeDBO struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Link        string `db:"link"`
	GUID        string `db:"guid"`
	Description string `db:"description"`
	AudioPath   string `db:"audio_path"`
	AudioURL    string `db:"audio_url"`
	MIMEType    string `db:"mime_type"`
	Size        int64  `db:"size"`
	Duration    int    `db:"duration"`
	PubDate     int64  `db:"pub_date"`
	Categories  string `db:"categories"`
	Image       string `db:"image"`
}

// Mapper: DBO to Domain Episode
func (e *episodeDBO) ToDomain() *domain.Episode {
	ep := &domain.Episode{
		ID:          e.ID,
		Title:       e.Title,
		Link:        e.Link,
		GUID:        e.GUID,
		Description: e.Description,
		AudioPath:   e.AudioPath,
		AudioURL:    e.AudioURL,
		MIMEType:    e.MIMEType,
		Size:        e.Size,
		Duration:    e.Duration,
		Image:       e.Image,
	}

	if e.PubDate > 0 {
		ep.PubDate = time.Unix(e.PubDate, 0).UTC()
	}

	// Categories are stored as a JSON array; a bad row degrades to none
	_ = json.Unmarshal([]byte(e.Categories), &ep.Categories)

	return ep
}

// Mapper: Domain Episode to DBO
func (e *episodeDBO) FromDomain(ep *domain.Episode) {
	e.ID = ep.ID
	e.Title = ep.Title
	e.Link = ep.Link
	e.GUID = ep.GUID
	e.Description = ep.Description
	e.AudioPath = ep.AudioPath
	e.AudioURL = ep.AudioURL
	e.MIMEType = ep.MIMEType
	e.Size = ep.Size
	e.Duration = ep.Duration
	e.Image = ep.Image

	if !ep.PubDate.IsZero() {
		e.PubDate = ep.PubDate.Unix()
	} else {
		e.PubDate = 0
	}

	cats, err := json.Marshal(ep.Categories)
	if err != nil || ep.Categories == nil {
		cats = []byte("[]")
	}
	e.Categories = string(cats)
}
