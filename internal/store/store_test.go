package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcorpas/podarc/internal/domain"
)

func testStore(t *testing.T) *ArchiveStore {
	t.Helper()

	s, err := NewArchiveStore(filepath.Join(t.TempDir(), "podarc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestRunRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run := &domain.FetchRun{
		ID:        "2N5fXyZq000000000000000000",
		Status:    domain.StatusFetching,
		StartedAt: time.Date(2026, 1, 25, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.RecordRun(ctx, run))

	// Finish and record again: same row, updated state
	run.Status = domain.StatusCompleted
	run.FinishedAt = time.Date(2026, 1, 25, 10, 5, 0, 0, time.UTC)
	require.NoError(t, s.RecordRun(ctx, run))

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, domain.StatusCompleted, runs[0].Status)
	assert.Equal(t, run.StartedAt, runs[0].StartedAt)
	assert.Equal(t, run.FinishedAt, runs[0].FinishedAt)
}

func TestResultsReturnedInManifestOrder(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run := &domain.FetchRun{ID: "run-1", Status: domain.StatusFetching, StartedAt: time.Now()}
	require.NoError(t, s.RecordRun(ctx, run))

	// Insert out of order
	for _, idx := range []int{3, 1, 2} {
		require.NoError(t, s.RecordResult(ctx, &domain.FetchResult{
			RunID:  "run-1",
			Index:  idx,
			Title:  "ep",
			URL:    "https://example.test/a.mp3",
			Dest:   "audio/a.mp3",
			Status: domain.StatusCompleted,
		}))
	}

	results, err := s.ListResults(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, i+1, res.Index)
	}
}

func TestListResultsUnknownRun(t *testing.T) {
	s := testStore(t)

	results, err := s.ListResults(context.Background(), "no-such-run")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEpisodeUpsert(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	ep := &domain.Episode{
		ID:          domain.EpisodeID("audio/2026-01-25-llms-academic-writing.mp3"),
		Title:       "LLMs and Academic Writing",
		Link:        "https://manuelcorpas.com/2026/01/25/llms-academic-writing/",
		GUID:        "https://manuelcorpas.github.io/podcast/audio/2026-01-25-llms-academic-writing.mp3",
		Description: "Episode description.",
		AudioPath:   "audio/2026-01-25-llms-academic-writing.mp3",
		AudioURL:    "https://manuelcorpas.github.io/podcast/audio/2026-01-25-llms-academic-writing.mp3",
		MIMEType:    "audio/mpeg",
		Size:        1024,
		Duration:    1830,
		PubDate:     time.Date(2026, 1, 25, 12, 0, 0, 0, time.UTC),
		Categories:  []string{"AI", "Podcast"},
	}
	require.NoError(t, s.UpsertEpisode(ctx, ep))

	// Republishing with new metadata replaces the row
	ep.Duration = 1900
	require.NoError(t, s.UpsertEpisode(ctx, ep))

	got, err := s.GetEpisode(ctx, ep.ID)
	require.NoError(t, err)

	assert.Equal(t, ep.Title, got.Title)
	assert.Equal(t, 1900, got.Duration)
	assert.Equal(t, ep.PubDate, got.PubDate)
	assert.Equal(t, []string{"AI", "Podcast"}, got.Categories)

	episodes, err := s.ListEpisodes(ctx)
	require.NoError(t, err)
	assert.Len(t, episodes, 1)
}

func TestGetEpisodeNotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.GetEpisode(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrEpisodeNotFound)
}

func TestListEpisodesNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	older := &domain.Episode{
		ID:        domain.EpisodeID("audio/2016-05-14-welcome.mp3"),
		Title:     "Welcome",
		AudioPath: "audio/2016-05-14-welcome.mp3",
		PubDate:   time.Date(2016, 5, 14, 12, 0, 0, 0, time.UTC),
	}
	newer := &domain.Episode{
		ID:        domain.EpisodeID("audio/2026-01-25-llms.mp3"),
		Title:     "LLMs",
		AudioPath: "audio/2026-01-25-llms.mp3",
		PubDate:   time.Date(2026, 1, 25, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, s.UpsertEpisode(ctx, older))
	require.NoError(t, s.UpsertEpisode(ctx, newer))

	episodes, err := s.ListEpisodes(ctx)
	require.NoError(t, err)
	require.Len(t, episodes, 2)

	assert.Equal(t, "LLMs", episodes[0].Title)
	assert.Equal(t, "Welcome", episodes[1].Title)
}
