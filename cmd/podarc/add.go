package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mcorpas/podarc/internal/domain"
	"github.com/mcorpas/podarc/internal/feed"
	"github.com/mcorpas/podarc/internal/media"
	"github.com/mcorpas/podarc/internal/notes"
)

func addCmd() *cobra.Command {
	var (
		title       string
		audioFile   string
		description string
		notesPath   string
		categories  []string
		link        string
		date        string
		guid        string
		image       string
		duration    int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Publish an episode: add it to feed.xml and index.html",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer appCtx.Store.Close()

			cfg := appCtx.Config
			fs := afero.NewOsFs()

			// Show notes can supply every metadata field; explicit
			// flags win over the frontmatter.
			if notesPath != "" {
				n, err := notes.Parse(fs, notesPath)
				if err != nil {
					return err
				}
				if title == "" {
					title = n.Title
				}
				if link == "" {
					link = n.Link
				}
				if date == "" && !n.Date.IsZero() {
					date = n.Date.Format("2006-01-02")
				}
				if len(categories) == 0 {
					categories = n.Categories
				}
				if image == "" {
					image = n.Image
				}
				if description == "" {
					description = n.Body
				}
			}

			switch {
			case title == "":
				return errors.New("--title is required (or provide --notes)")
			case audioFile == "":
				return errors.New("--file is required")
			case description == "":
				return errors.New("--description is required (or provide --notes)")
			case date == "":
				return errors.New("--date is required (or provide --notes)")
			}

			audioPath := filepath.Join(cfg.Archive.Dir, audioFile)
			info, err := os.Stat(audioPath)
			if err != nil {
				return fmt.Errorf("audio file not found: %s", audioPath)
			}

			pubDay, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", date, err)
			}
			// Publish at midday so the date survives timezone conversion
			pubDate := time.Date(pubDay.Year(), pubDay.Month(), pubDay.Day(), 12, 0, 0, 0, time.UTC)

			if duration == 0 {
				duration, err = probeDuration(cmd.Context(), appCtx.Logger.Warn, audioPath)
				if err != nil {
					return err
				}
			}

			audioURL := cfg.Archive.BaseURL + "/" + filepath.ToSlash(audioFile)
			if guid == "" {
				guid = audioURL
			}
			if image == "" {
				image = cfg.Feed.Image
			}

			ep := &domain.Episode{
				ID:          domain.EpisodeID(audioFile),
				Title:       title,
				Link:        link,
				GUID:        guid,
				Description: description,
				AudioPath:   audioFile,
				AudioURL:    audioURL,
				MIMEType:    media.MIMEType(audioFile),
				Size:        info.Size(),
				Duration:    duration,
				PubDate:     pubDate,
				Categories:  feed.NormalizeCategories(categories),
				Image:       image,
			}

			editor := feed.NewEditor(fs,
				filepath.Join(cfg.Archive.Dir, cfg.Feed.Path),
				filepath.Join(cfg.Archive.Dir, cfg.Feed.IndexPath),
				cfg.Feed.Author,
			)

			if err := editor.AddItem(ep); err != nil {
				return err
			}
			if err := editor.AddIndexEntry(ep); err != nil {
				return err
			}

			if err := appCtx.Store.UpsertEpisode(cmd.Context(), ep); err != nil {
				appCtx.Logger.Warn("episode published but not recorded: %v", err)
			}

			fmt.Printf("Added: %s\n", ep.Title)
			fmt.Printf("  Audio:    %s\n", ep.AudioURL)
			fmt.Printf("  Size:     %d bytes\n", ep.Size)
			fmt.Printf("  Duration: %ds (%dm %ds)\n", ep.Duration, ep.Duration/60, ep.Duration%60)
			fmt.Printf("  Date:     %s\n", ep.PubDate.Format(time.RFC1123Z))

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "episode title")
	cmd.Flags().StringVar(&audioFile, "file", "", "audio file path relative to the archive root")
	cmd.Flags().StringVar(&description, "description", "", "episode description")
	cmd.Flags().StringVar(&notesPath, "notes", "", "markdown show-notes file with frontmatter metadata")
	cmd.Flags().StringSliceVar(&categories, "categories", nil, "episode categories")
	cmd.Flags().StringVar(&link, "link", "", "blog post URL")
	cmd.Flags().StringVar(&date, "date", "", "publication date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&guid, "guid", "", "item GUID (default: the audio URL)")
	cmd.Flags().StringVar(&image, "image", "", "episode artwork URL")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in seconds (default: probe with ffprobe)")

	return cmd
}

// probeDuration shells out to ffprobe; a missing binary is an actionable
// error rather than a crash.
func probeDuration(ctx context.Context, warn func(string, ...any), path string) (int, error) {
	prober, err := media.NewProber()
	if err != nil {
		if errors.Is(err, domain.ErrFFProbeNotFound) {
			return 0, errors.New("ffprobe not found in PATH; pass --duration instead")
		}
		return 0, err
	}

	d, err := prober.Duration(ctx, path)
	if err != nil {
		warn("duration probe failed: %v", err)
		return 0, errors.New("could not probe duration; pass --duration instead")
	}

	return d, nil
}
