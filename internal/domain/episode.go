package domain

import (
	"time"
)

type FetchStatus string

const (
	StatusPending   FetchStatus = "pending"
	StatusFetching  FetchStatus = "fetching"
	StatusCompleted FetchStatus = "completed"
	StatusFailed    FetchStatus = "failed"
)

// FetchRun represents one invocation of the batch fetcher.
type FetchRun struct {
	ID         string      `json:"id"`
	Status     FetchStatus `json:"status"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Error      string      `json:"error,omitempty"`
}

// FetchResult is the outcome of a single manifest entry within a run.
type FetchResult struct {
	RunID  string      `json:"run_id"`
	Index  int         `json:"index"`
	Title  string      `json:"title"`
	URL    string      `json:"url"`
	Dest   string      `json:"dest"`
	Bytes  int64       `json:"bytes"`
	Status FetchStatus `json:"status"`
	Error  string      `json:"error,omitempty"`
}

// Episode is a published feed entry. AudioPath is relative to the archive
// root; AudioURL is the public enclosure URL derived from the base URL.
type Episode struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	GUID        string    `json:"guid"`
	Description string    `json:"description"`
	AudioPath   string    `json:"audio_path"`
	AudioURL    string    `json:"audio_url"`
	MIMEType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	Duration    int       `json:"duration"`
	PubDate     time.Time `json:"pub_date"`
	Categories  []string  `json:"categories"`
	Image       string    `json:"image,omitempty"`
}
