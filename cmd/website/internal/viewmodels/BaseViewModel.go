package viewmodels

import (
	"context"
	"net/http"

	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/photogallery/pkg/services"
)

type contextKey string

const (
	galleryContextKey   contextKey = "gallery"
	sessionIDContextKey contextKey = "sessionID"
)

type BaseViewModel struct {
	Message            string
	IsError            bool
	IsHtmx             bool
	JavascriptIncludes []rendering.JavascriptInclude
}

func WithGallery(ctx context.Context, sessionID string, gallery *services.Gallery) context.Context {
	ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
	return context.WithValue(ctx, galleryContextKey, gallery)
}

/*
GetGalleryFromContext returns the session's gallery placed on the
request by the gallery session middleware. Requests that skipped the
middleware get an empty gallery, which renders as loading.
*/
func GetGalleryFromContext(r *http.Request) *services.Gallery {
	if result, ok := r.Context().Value(galleryContextKey).(*services.Gallery); ok {
		return result
	}

	return services.NewGallery()
}

func GetSessionIDFromContext(r *http.Request) string {
	if result, ok := r.Context().Value(sessionIDContextKey).(string); ok {
		return result
	}

	return ""
}
