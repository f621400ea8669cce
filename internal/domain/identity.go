package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// EpisodeID derives the stable primary key for an episode from its audio
// path. The path is unique within the archive, so re-publishing the same
// episode updates the existing row instead of inserting a duplicate.
func EpisodeID(audioPath string) string {
	h := sha256.Sum256([]byte(audioPath))
	return hex.EncodeToString(h[:])
}
