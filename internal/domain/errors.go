package domain

import (
	"errors"
	"fmt"
)

// ErrFFProbeNotFound indicates ffprobe is missing from PATH
var ErrFFProbeNotFound = errors.New("ffprobe not found")

// ErrEpisodeNotFound indicates a store lookup miss
var ErrEpisodeNotFound = errors.New("episode not found")

// FetchError reports the failure of a single manifest entry. The batch is
// fail-fast, so the first FetchError aborts the whole run.
type FetchError struct {
	Index int
	Title string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("entry %d (%s): %v", e.Index, e.Title, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusError is the cause when the final HTTP status after redirects is
// outside the 2xx range.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Code)
}
