package main

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/padraicbc/stablebook/config"
	"github.com/padraicbc/stablebook/db"
	"github.com/padraicbc/stablebook/handlers"
	applog "github.com/padraicbc/stablebook/logger"
	mw "github.com/padraicbc/stablebook/middleware"
)

//go:embed all:build/*
var embeddedFiles embed.FS

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	bdb := db.Setup(cfg)
	defer bdb.Close()

	ctx := context.Background()
	if err := db.CreateTables(ctx, bdb); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}
	if err := db.SeedRaces(ctx, bdb); err != nil {
		logger.Fatal("seed race catalog failed", zap.Error(err))
	}

	h := handlers.New(bdb, cfg.JWTKey())

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	// Public
	e.POST("/sb/signin", h.Signin)

	// Protected – require valid JWT in Authorization header
	sb := e.Group("/sb", mw.JWT(cfg.JWTKey()))
	sb.GET("/horses", h.GetHorses)
	sb.POST("/horses", h.CreateHorse)
	sb.GET("/horses/:id", h.GetHorse)
	sb.PUT("/horses/:id", h.UpdateHorse)
	sb.DELETE("/horses/:id", h.DeleteHorse)
	sb.GET("/breeds", h.Breeds)
	sb.GET("/races", h.Races)
	sb.POST("/races", h.CreateRace)
	sb.GET("/race-matches", h.RaceMatches)
	sb.GET("/traits", h.Traits)

	// Strip the "build/" prefix so URLs work correctly
	subFS, err := fs.Sub(embeddedFiles, "build")
	if err != nil {
		logger.Fatal("open embedded build fs failed", zap.Error(err))
	}
	// Serve static files correctly using Echo's WrapHandler
	fileServer := http.FileServer(http.FS(subFS))
	e.GET("/*", func(c echo.Context) error {
		path := c.Request().URL.Path

		// If request is for a static file, serve it
		if strings.Contains(path, ".") { // Matches JS, CSS, images, etc.
			http.StripPrefix("/", fileServer).ServeHTTP(c.Response(), c.Request())
			return nil
		}
		// Otherwise, serve `index.html` for client-side routing (SPA fallback)
		indexFile, err := subFS.Open("index.html")

		if err != nil {
			return c.NoContent(http.StatusNotFound)
		}
		defer indexFile.Close()

		return c.Stream(http.StatusOK, "text/html", indexFile)
	})

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
