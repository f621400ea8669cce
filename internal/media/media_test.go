package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMIMEType(t *testing.T) {
	cases := map[string]string{
		"audio/2026-01-25-llms-academic-writing.mp3": "audio/mpeg",
		"audio/episode.MP3":                          "audio/mpeg",
		"audio/episode.m4a":                          "audio/mp4",
		"audio/episode.wav":                          "audio/wav",
		"audio/episode.ogg":                          "audio/ogg",
		"audio/episode.flac":                         "audio/mpeg",
		"audio/episode":                              "audio/mpeg",
	}

	for path, want := range cases {
		assert.Equal(t, want, MIMEType(path), "path %s", path)
	}
}
