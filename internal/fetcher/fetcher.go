package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/mcorpas/podarc/internal/app"
	"github.com/mcorpas/podarc/internal/domain"
	"github.com/mcorpas/podarc/internal/manifest"
)

// Fetcher is the batch download engine. It walks the manifest in fixed
// order and mirrors each remote file into the archive, stopping at the
// first failure.
type Fetcher struct {
	app    *app.Context
	client *http.Client
	writer *FileWriter
}

func New(appCtx *app.Context) *Fetcher {
	// The default client follows redirects (up to 10), which the
	// WordPress media library relies on.
	client := &http.Client{}
	if t := appCtx.Config.Fetch.TimeoutSeconds; t > 0 {
		client.Timeout = time.Duration(t) * time.Second
	}

	return &Fetcher{
		app:    appCtx,
		client: client,
		writer: NewFileWriter(appCtx.Config.Archive.Dir),
	}
}

// Run executes the whole manifest and prints the completion summary on full
// success. The first failing entry aborts the remaining work; files written
// by earlier entries are left in place.
func (f *Fetcher) Run(ctx context.Context, m *manifest.Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}

	run := &domain.FetchRun{
		ID:        ksuid.New().String(),
		Status:    domain.StatusFetching,
		StartedAt: time.Now(),
	}
	f.recordRun(ctx, run)

	var err error
	if f.app.Config.Fetch.Workers > 1 {
		err = f.runPool(ctx, run, m)
	} else {
		err = f.runSequential(ctx, run, m)
	}

	run.FinishedAt = time.Now()
	if err != nil {
		run.Status = domain.StatusFailed
		run.Error = err.Error()
	} else {
		run.Status = domain.StatusCompleted
	}
	// The incoming ctx may already be cancelled by the failure
	f.recordRun(context.Background(), run)

	if err != nil {
		return err
	}

	f.printSummary(m)
	return nil
}

func (f *Fetcher) runSequential(ctx context.Context, run *domain.FetchRun, m *manifest.Manifest) error {
	total := len(m.Entries)

	for _, e := range m.Entries {
		f.app.Logger.Info("[%d/%d] Downloading: %s", e.Index, total, e.Title)

		res, err := f.fetchEntry(ctx, e)
		res.RunID = run.ID
		f.recordResult(ctx, res)

		if err != nil {
			return &domain.FetchError{Index: e.Index, Title: e.Title, Err: err}
		}
	}

	return nil
}

// fetchEntry performs the GET-and-save for a single manifest entry. The
// returned result is always usable for recording; the error is the cause
// when the entry failed.
func (f *Fetcher) fetchEntry(ctx context.Context, e manifest.Entry) (*domain.FetchResult, error) {
	res := &domain.FetchResult{
		Index:  e.Index,
		Title:  e.Title,
		URL:    e.URL,
		Dest:   e.Dest,
		Status: domain.StatusCompleted,
	}

	fail := func(err error) (*domain.FetchResult, error) {
		res.Status = domain.StatusFailed
		res.Error = err.Error()
		return res, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.URL, nil)
	if err != nil {
		return fail(err)
	}
	req.Header.Set("User-Agent", f.app.Config.Fetch.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(&domain.StatusError{Code: resp.StatusCode})
	}

	n, err := f.writer.Write(e.Dest, resp.Body)
	res.Bytes = n
	if err != nil {
		return fail(err)
	}

	return res, nil
}

// printSummary emits the static post-run text: aggregate size plus the
// manual follow-up steps that are not automated here.
func (f *Fetcher) printSummary(m *manifest.Manifest) {
	var total int64
	for _, e := range m.Entries {
		total += f.writer.Size(e.Dest)
	}

	fmt.Printf("\nAll %d files downloaded (%d MB total).\n", len(m.Entries), total/1024/1024)
	fmt.Println("Note: files over 100 MB exceed common source-control hosting limits.")
	fmt.Println("Next steps (manual):")
	fmt.Println("  1. Convert any .wav files: ffmpeg -i audio/FILE.wav -b:a 128k audio/FILE.mp3")
	fmt.Println("  2. Update the matching enclosure url/type in feed.xml")
	fmt.Println("  3. Remove the .wav originals before committing")
}

// Store writes are best effort: a broken database must not abort a
// multi-gigabyte download.
func (f *Fetcher) recordRun(ctx context.Context, run *domain.FetchRun) {
	if f.app.Store == nil {
		return
	}
	if err := f.app.Store.RecordRun(ctx, run); err != nil {
		f.app.Logger.Warn("could not record run %s: %v", run.ID, err)
	}
}

func (f *Fetcher) recordResult(ctx context.Context, res *domain.FetchResult) {
	if f.app.Store == nil {
		return
	}
	if err := f.app.Store.RecordResult(ctx, res); err != nil {
		f.app.Logger.Warn("could not record result for entry %d: %v", res.Index, err)
	}
}
