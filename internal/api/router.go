package api

import (
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/mcorpas/podarc/internal/api/controllers"
	"github.com/mcorpas/podarc/internal/app"
)

func RegisterRoutes(e *echo.Echo, app *app.Context) {

	// Middleware: Request Logger
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c *echo.Context, v middleware.RequestLoggerValues) error {
			app.Logger.Info("%s %s | %d | %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	archiveCtrl := &controllers.ArchiveController{App: app}

	// Published documents
	e.GET("/", archiveCtrl.HandleIndex)
	e.GET("/index.html", archiveCtrl.HandleIndex)
	e.GET("/feed.xml", archiveCtrl.HandleFeed)
	e.GET("/audio/:file", archiveCtrl.HandleAudio)

	// JSON API over the archive store
	e.GET("/api/episodes", archiveCtrl.HandleEpisodes)
	e.GET("/api/runs", archiveCtrl.HandleRuns)
	e.GET("/api/runs/:id", archiveCtrl.HandleRunResults)
}
