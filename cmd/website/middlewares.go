package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/adampresley/photogallery/cmd/website/internal/viewmodels"
	"github.com/adampresley/photogallery/pkg/models"
	"github.com/adampresley/photogallery/pkg/services"
)

/*
newGallerySessionMiddleware attaches the viewer's gallery to the
request. Viewers without a cookie, or whose session has expired, get
a new session, and its albums and photos start loading right away.
*/
func newGallerySessionMiddleware(sessionService sessions.Session[*models.Viewer], gallerySessionService services.GallerySessionServicer, excludedPaths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				err     error
				viewer  *models.Viewer
				gallery *services.Gallery
				ok      bool
			)

			path := r.URL.Path

			/*
			 * If this path is excluded, keep going.
			 */
			for _, excludedPath := range excludedPaths {
				if strings.HasPrefix(path, excludedPath) {
					next.ServeHTTP(w, r)
					return
				}
			}

			if viewer, gallery, ok = lookupGallery(r, sessionService, gallerySessionService); !ok {
				viewer = &models.Viewer{}
				viewer.SessionID, gallery = gallerySessionService.Create()

				if err = sessionService.Set(r, viewer); err != nil {
					slog.Error("error setting viewer session", "error", err)
				}

				if err = sessionService.Save(w, r); err != nil {
					slog.Error("error saving session", "error", err)
				}
			}

			ctx := viewmodels.WithGallery(r.Context(), viewer.SessionID, gallery)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

/*
newRequireGallerySessionMiddleware attaches the viewer's existing
gallery to the request. It never creates a session; requests without
a live one get a 404.
*/
func newRequireGallerySessionMiddleware(sessionService sessions.Session[*models.Viewer], gallerySessionService services.GallerySessionServicer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer, gallery, ok := lookupGallery(r, sessionService, gallerySessionService)

			if !ok {
				httphelpers.WriteText(w, http.StatusNotFound, "gallery session not found")
				return
			}

			ctx := viewmodels.WithGallery(r.Context(), viewer.SessionID, gallery)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func lookupGallery(r *http.Request, sessionService sessions.Session[*models.Viewer], gallerySessionService services.GallerySessionServicer) (*models.Viewer, *services.Gallery, bool) {
	viewer, err := sessionService.Get(r)

	if err != nil || viewer == nil {
		return nil, nil, false
	}

	gallery, ok := gallerySessionService.Get(viewer.SessionID)
	return viewer, gallery, ok
}
