package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v5"

	"github.com/mcorpas/podarc/internal/app"
	"github.com/mcorpas/podarc/internal/media"
)

type ArchiveController struct {
	App *app.Context
}

// HandleEpisodes lists the published episodes from the store.
func (ctrl *ArchiveController) HandleEpisodes(c *echo.Context) error {
	episodes, err := ctrl.App.Store.ListEpisodes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, EpisodeListResponse{Episodes: episodes, Count: len(episodes)})
}

// HandleRuns lists the recorded fetch runs.
func (ctrl *ArchiveController) HandleRuns(c *echo.Context) error {
	runs, err := ctrl.App.Store.ListRuns(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, RunListResponse{Runs: runs, Count: len(runs)})
}

// HandleRunResults returns the per-entry outcomes of one run.
func (ctrl *ArchiveController) HandleRunResults(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.String(http.StatusBadRequest, "Missing run ID")
	}

	results, err := ctrl.App.Store.ListResults(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	if len(results) == 0 {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "run not found"})
	}

	return c.JSON(http.StatusOK, RunDetailResponse{Results: results})
}

// HandleFeed serves feed.xml from the archive root.
func (ctrl *ArchiveController) HandleFeed(c *echo.Context) error {
	path := filepath.Join(ctrl.App.Config.Archive.Dir, ctrl.App.Config.Feed.Path)
	return ctrl.serveFile(c, path, "application/rss+xml; charset=utf-8")
}

// HandleIndex serves the archive index page.
func (ctrl *ArchiveController) HandleIndex(c *echo.Context) error {
	path := filepath.Join(ctrl.App.Config.Archive.Dir, ctrl.App.Config.Feed.IndexPath)
	return ctrl.serveFile(c, path, "text/html; charset=utf-8")
}

// HandleAudio streams one audio file from the archive.
func (ctrl *ArchiveController) HandleAudio(c *echo.Context) error {
	name := c.Param("file")

	// The audio directory is flat; anything that looks like a path is
	// a traversal attempt.
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return c.String(http.StatusBadRequest, "Invalid file name")
	}

	path := filepath.Join(ctrl.App.Config.Archive.Dir, ctrl.App.Config.Archive.AudioDir, name)
	return ctrl.serveFile(c, path, media.MIMEType(name))
}

func (ctrl *ArchiveController) serveFile(c *echo.Context, path, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c.NoContent(http.StatusNotFound)
		}
		return c.NoContent(http.StatusInternalServerError)
	}
	defer f.Close()

	return c.Stream(http.StatusOK, contentType, f)
}
