package home

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/adampresley/photogallery/cmd/website/internal/viewmodels"
	"github.com/adampresley/photogallery/pkg/models"
	"github.com/adampresley/photogallery/pkg/services"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
	ReloadAction(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	GallerySessionService services.GallerySessionServicer
	Renderer              rendering.TemplateRenderer
	SessionService        sessions.Session[*models.Viewer]
}

type HomeController struct {
	gallerySessionService services.GallerySessionServicer
	renderer              rendering.TemplateRenderer
	sessionService        sessions.Session[*models.Viewer]
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		gallerySessionService: config.GallerySessionService,
		renderer:              config.Renderer,
		sessionService:        config.SessionService,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	pageName := "pages/home"

	gallery := viewmodels.GetGalleryFromContext(r)
	viewData := viewmodels.NewGalleryPage(gallery.Snapshot(), httphelpers.IsHtmx(r))

	if viewData.IsReady {
		viewData.JavascriptIncludes = []rendering.JavascriptInclude{
			{Type: "module", Src: "/static/js/pages/gallery.js"},
		}
	}

	c.renderer.Render(pageName, viewData, w)
}

/*
GET /reload

Throws away the viewer's session, error slot included, and starts
over with a fresh load.
*/
func (c HomeController) ReloadAction(w http.ResponseWriter, r *http.Request) {
	if viewer, err := c.sessionService.Get(r); err == nil && viewer != nil {
		c.gallerySessionService.Destroy(viewer.SessionID)
	}

	if err := c.sessionService.Destroy(w, r); err != nil {
		slog.Error("error destroying viewer session", "error", err)
	}

	_ = c.sessionService.Save(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}
