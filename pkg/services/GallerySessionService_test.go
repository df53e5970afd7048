package services

import (
	"context"
	"testing"
	"time"

	"github.com/adampresley/photogallery/pkg/models"
	"github.com/alitto/pond/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGallerySessionLifecycle(t *testing.T) {
	pool := pond.NewPool(4)

	service := NewGallerySessionService(GallerySessionServiceConfig{
		PhotoSource: fakeSource{albums: tripAlbums(), photos: tripPhotos()},
		Pool:        pool,
		ShutdownCtx: context.Background(),
		TTL:         time.Minute,
	})

	sessionID, created := service.Create()
	otherID, _ := service.Create()

	require.NotEmpty(t, sessionID)
	assert.NotEqual(t, sessionID, otherID)
	require.NoError(t, pool.Stop().Wait())

	gallery, ok := service.Get(sessionID)
	require.True(t, ok)
	assert.Same(t, created, gallery)
	assert.Equal(t, models.RenderReady, gallery.Snapshot().RenderState())

	service.Destroy(sessionID)

	_, ok = service.Get(sessionID)
	assert.False(t, ok)
}

func TestGallerySessionUnknownID(t *testing.T) {
	service := NewGallerySessionService(GallerySessionServiceConfig{
		PhotoSource: fakeSource{},
		Pool:        pond.NewPool(1),
	})

	_, ok := service.Get("nope")
	assert.False(t, ok)
}

func TestGallerySessionGetDoesNotReviveDestroyed(t *testing.T) {
	pool := pond.NewPool(4)

	service := NewGallerySessionService(GallerySessionServiceConfig{
		PhotoSource: fakeSource{albums: tripAlbums(), photos: tripPhotos()},
		Pool:        pool,
		TTL:         time.Minute,
	})

	for i := 0; i < 50; i++ {
		sessionID, _ := service.Create()
		done := make(chan struct{})

		go func() {
			defer close(done)

			for j := 0; j < 100; j++ {
				service.Get(sessionID)
			}
		}()

		service.Destroy(sessionID)
		<-done

		_, ok := service.Get(sessionID)
		require.False(t, ok, "session %s came back after Destroy", sessionID)
	}

	require.NoError(t, pool.Stop().Wait())
}
