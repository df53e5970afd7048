package photos

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/photogallery/cmd/website/internal/placeholder"
	"github.com/adampresley/photogallery/cmd/website/internal/viewmodels"
	"github.com/adampresley/photogallery/pkg/models"
)

type PhotoHandlers interface {
	Placeholder(w http.ResponseWriter, r *http.Request)
	ToggleResolution(w http.ResponseWriter, r *http.Request)
	ToggleStackOrder(w http.ResponseWriter, r *http.Request)
}

type PhotoControllerConfig struct {
	PlaceholderCreator placeholder.PlaceholderCreator
}

type PhotoController struct {
	placeholderCreator placeholder.PlaceholderCreator
}

func NewPhotoController(config PhotoControllerConfig) PhotoController {
	return PhotoController{
		placeholderCreator: config.PlaceholderCreator,
	}
}

/*
PUT /photos/{id}/resolution
*/
func (c PhotoController) ToggleResolution(w http.ResponseWriter, r *http.Request) {
	gallery := viewmodels.GetGalleryFromContext(r)
	photoID := httphelpers.GetFromRequest[int](r, "id")

	photo, ok := gallery.ToggleResolution(photoID)

	if !ok {
		httphelpers.WriteText(w, http.StatusNotFound, "photo not found")
		return
	}

	c.writeTile(w, photo)
}

/*
PUT /photos/{id}/stack
*/
func (c PhotoController) ToggleStackOrder(w http.ResponseWriter, r *http.Request) {
	gallery := viewmodels.GetGalleryFromContext(r)
	photoID := httphelpers.GetFromRequest[int](r, "id")

	photo, ok := gallery.ToggleStackOrder(photoID)

	if !ok {
		httphelpers.WriteText(w, http.StatusNotFound, "photo not found")
		return
	}

	c.writeTile(w, photo)
}

/*
GET /photos/{id}/placeholder
*/
func (c PhotoController) Placeholder(w http.ResponseWriter, r *http.Request) {
	var (
		err   error
		image []byte
	)

	gallery := viewmodels.GetGalleryFromContext(r)
	photoID := httphelpers.GetFromRequest[int](r, "id")

	photo, ok := gallery.FindPhoto(photoID)

	if !ok {
		httphelpers.WriteText(w, http.StatusNotFound, "photo not found")
		return
	}

	if image, err = c.placeholderCreator.Create(r.Context(), photo); err != nil {
		slog.Error("error creating placeholder", "error", err, "photoID", photoID)
		httphelpers.WriteText(w, http.StatusBadGateway, "Failed to create placeholder")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image)
}

func (c PhotoController) writeTile(w http.ResponseWriter, photo models.Photo) {
	markup, err := viewmodels.NewPhotoTile(photo).Render()

	if err != nil {
		slog.Error("error rendering photo tile", "error", err, "photoID", photo.ID)
		httphelpers.TextInternalServerError(w, "Error rendering photo")
		return
	}

	httphelpers.WriteHtml(w, http.StatusOK, markup)
}
