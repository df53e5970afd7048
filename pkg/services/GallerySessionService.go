package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type GallerySessionServicer interface {
	Create() (string, *Gallery)
	Destroy(sessionID string)
	Get(sessionID string) (*Gallery, bool)
}

type GallerySessionServiceConfig struct {
	PhotoSource PhotoSourcer
	Pool        pond.Pool
	ShutdownCtx context.Context
	TTL         time.Duration
}

/*
GallerySessionService keeps every viewer's Gallery in memory. A
session that goes untouched for TTL is dropped, and the viewer gets a
fresh one on their next visit.
*/
type GallerySessionService struct {
	photoSource PhotoSourcer
	pool        pond.Pool
	sessions    *cache.Cache
	shutdownCtx context.Context
}

func NewGallerySessionService(config GallerySessionServiceConfig) GallerySessionService {
	if config.TTL <= 0 {
		config.TTL = time.Hour
	}

	if config.ShutdownCtx == nil {
		config.ShutdownCtx = context.Background()
	}

	return GallerySessionService{
		photoSource: config.PhotoSource,
		pool:        config.Pool,
		sessions:    cache.New(config.TTL, config.TTL/2),
		shutdownCtx: config.ShutdownCtx,
	}
}

// Create registers a new session and starts its load.
func (s GallerySessionService) Create() (string, *Gallery) {
	sessionID := uuid.NewString()
	gallery := NewGallery()

	s.sessions.Set(sessionID, gallery, cache.DefaultExpiration)
	slog.Info("gallery session created", "sessionID", sessionID)

	gallery.Load(s.shutdownCtx, s.photoSource, s.pool)
	return sessionID, gallery
}

func (s GallerySessionService) Destroy(sessionID string) {
	s.sessions.Delete(sessionID)
	slog.Info("gallery session destroyed", "sessionID", sessionID)
}

func (s GallerySessionService) Get(sessionID string) (*Gallery, bool) {
	value, ok := s.sessions.Get(sessionID)

	if !ok {
		return nil, false
	}

	gallery, ok := value.(*Gallery)

	if !ok {
		return nil, false
	}

	// Replace only succeeds while the entry exists, so a concurrent
	// Destroy is never undone by refreshing the idle timer.
	if err := s.sessions.Replace(sessionID, gallery, cache.DefaultExpiration); err != nil {
		return nil, false
	}

	return gallery, true
}
