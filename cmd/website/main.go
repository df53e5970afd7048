package main

import (
	"context"
	"embed"
	"encoding/gob"
	"log/slog"
	"net/http"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/adampresley/photogallery/cmd/website/internal/configuration"
	"github.com/adampresley/photogallery/cmd/website/internal/home"
	"github.com/adampresley/photogallery/cmd/website/internal/photos"
	"github.com/adampresley/photogallery/cmd/website/internal/placeholder"
	"github.com/adampresley/photogallery/pkg/models"
	"github.com/adampresley/photogallery/pkg/services"
	"github.com/alitto/pond/v2"
)

var (
	Version string = "development"
	appName string = "photogallery"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	gallerySessionService services.GallerySessionServicer
	photoSourceService    services.PhotoSourcer
	placeholderCreator    placeholder.PlaceholderCreator
	renderer              rendering.TemplateRenderer
	sessionService        sessions.Session[*models.Viewer]

	/* Controllers */
	homeController  home.HomeHandlers
	photoController photos.PhotoHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("albumsUrl", config.AlbumsURL),
		slog.String("photosUrl", config.PhotosURL),
	)

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())

	/*
	 * Setup services
	 */
	gob.Register(&models.Viewer{})

	cookieStore := sessions.NewCookieStore(config.CookieSecret)
	sessionService = sessions.NewSessionWrapper[*models.Viewer](cookieStore, "photogallery", "viewer")

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	fetchPool := pond.NewPool(config.MaxFetchWorkers, pond.WithContext(shutdownCtx))

	photoSourceService = services.NewPhotoSourceService(services.PhotoSourceServiceConfig{
		AlbumsURL:    config.AlbumsURL,
		PhotosURL:    config.PhotosURL,
		FetchTimeout: time.Duration(config.FetchTimeoutSeconds) * time.Second,
	})

	gallerySessionService = services.NewGallerySessionService(services.GallerySessionServiceConfig{
		PhotoSource: photoSourceService,
		Pool:        fetchPool,
		ShutdownCtx: shutdownCtx,
		TTL:         time.Duration(config.SessionTTLMinutes) * time.Minute,
	})

	placeholderCreator = placeholder.NewPlaceholderCreatorService(placeholder.PlaceholderCreatorConfig{
		MaxSize: uint(config.PlaceholderSize),
	})

	/*
	 * Setup controllers
	 */
	homeController = home.NewHomeController(home.HomeControllerConfig{
		GallerySessionService: gallerySessionService,
		Renderer:              renderer,
		SessionService:        sessionService,
	})

	photoController = photos.NewPhotoController(photos.PhotoControllerConfig{
		PlaceholderCreator: placeholderCreator,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	gallerySessionMiddleware := newGallerySessionMiddleware(
		sessionService,
		gallerySessionService,
		[]string{
			"/static",
			"/heartbeat",
			"/reload",
		},
	)

	requireGallerySessionMiddleware := newRequireGallerySessionMiddleware(sessionService, gallerySessionService)

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /reload", HandlerFunc: homeController.ReloadAction},
		{Path: "GET /", HandlerFunc: homeController.HomePage, Middlewares: []mux.MiddlewareFunc{gallerySessionMiddleware}},
		{Path: "PUT /photos/{id}/resolution", HandlerFunc: photoController.ToggleResolution, Middlewares: []mux.MiddlewareFunc{requireGallerySessionMiddleware}},
		{Path: "PUT /photos/{id}/stack", HandlerFunc: photoController.ToggleStackOrder, Middlewares: []mux.MiddlewareFunc{requireGallerySessionMiddleware}},
		{Path: "GET /photos/{id}/placeholder", HandlerFunc: photoController.Placeholder, Middlewares: []mux.MiddlewareFunc{requireGallerySessionMiddleware}},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	cancel()
	mux.Shutdown(httpServer)
	_ = fetchPool.Stop().Wait()
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}
