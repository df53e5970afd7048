package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/adampresley/adamgokit/slices"
	"github.com/adampresley/photogallery/pkg/models"
	"github.com/alitto/pond/v2"
)

/*
Gallery holds one viewer session's state: the fetched albums, the
fetched photos and the error slot. Collections are only ever replaced
wholesale, so a snapshot handed out by Snapshot is never modified
afterwards.
*/
type Gallery struct {
	mu     sync.RWMutex
	albums []models.Album
	photos []models.Photo
	err    string
}

type GallerySnapshot struct {
	Albums []models.Album
	Photos []models.Photo
	Error  string
}

func NewGallery() *Gallery {
	return &Gallery{
		albums: []models.Album{},
		photos: []models.Photo{},
	}
}

/*
Load dispatches both fetches on the pool without waiting for either.
Each completion writes only its own field, or the error slot. When
both fail the later failure wins the slot.
*/
func (g *Gallery) Load(ctx context.Context, source PhotoSourcer, pool pond.Pool) {
	pool.Submit(func() {
		albums, err := source.LoadAlbums(ctx)

		if err != nil {
			slog.Error("error fetching albums", "error", err)
			g.setError(err)
			return
		}

		slog.Debug("albums fetched", "numAlbums", len(albums))
		g.setAlbums(albums)
	})

	pool.Submit(func() {
		photos, err := source.LoadPhotos(ctx)

		if err != nil {
			slog.Error("error fetching photos", "error", err)
			g.setError(err)
			return
		}

		slog.Debug("photos fetched", "numPhotos", len(photos))
		g.setPhotos(photos)
	})
}

func (g *Gallery) Snapshot() GallerySnapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GallerySnapshot{
		Albums: g.albums,
		Photos: g.photos,
		Error:  g.err,
	}
}

/*
ToggleResolution flips the display mode of a single photo. The second
return is false, and nothing changes, when no photo has that ID.
*/
func (g *Gallery) ToggleResolution(photoID int) (models.Photo, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	photos, ok := ToggleResolution(g.photos, photoID)

	if !ok {
		return models.Photo{}, false
	}

	g.photos = photos
	return photos[indexOfPhoto(photos, photoID)], true
}

func (g *Gallery) ToggleStackOrder(photoID int) (models.Photo, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	photos, ok := ToggleStackOrder(g.photos, photoID)

	if !ok {
		return models.Photo{}, false
	}

	g.photos = photos
	return photos[indexOfPhoto(photos, photoID)], true
}

func (g *Gallery) FindPhoto(photoID int) (models.Photo, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	index := indexOfPhoto(g.photos, photoID)

	if index < 0 {
		return models.Photo{}, false
	}

	return g.photos[index], true
}

func (g *Gallery) setAlbums(albums []models.Album) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.albums = albums
}

func (g *Gallery) setPhotos(photos []models.Photo) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.photos = photos
}

func (g *Gallery) setError(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.err = err.Error()
}

func (s GallerySnapshot) RenderState() models.RenderState {
	return RenderStateOf(s.Albums, s.Photos, s.Error)
}

func (s GallerySnapshot) Groups() []models.AlbumGroup {
	return GroupByAlbum(s.Albums, s.Photos)
}

/*
ToggleResolution returns a copy of photos with the matching photo's
display mode flipped. The input slice and its elements are left
alone. When nothing matches, photos is returned as is with false.
*/
func ToggleResolution(photos []models.Photo, photoID int) ([]models.Photo, bool) {
	index := indexOfPhoto(photos, photoID)

	if index < 0 {
		return photos, false
	}

	result := make([]models.Photo, len(photos))
	copy(result, photos)

	if result[index].DisplayMode == models.Full {
		result[index].DisplayMode = models.Thumbnail
	} else {
		result[index].DisplayMode = models.Full
	}

	return result, true
}

/*
ToggleStackOrder returns a copy of photos with the matching photo
raised above every other photo in its album, or lowered back to rank
zero if it was already raised.
*/
func ToggleStackOrder(photos []models.Photo, photoID int) ([]models.Photo, bool) {
	index := indexOfPhoto(photos, photoID)

	if index < 0 {
		return photos, false
	}

	result := make([]models.Photo, len(photos))
	copy(result, photos)

	target := &result[index]

	if target.IsRaised() {
		target.StackRank = 0
		return result, true
	}

	top := 0

	for _, photo := range photos {
		if photo.AlbumID == target.AlbumID && photo.StackRank > top {
			top = photo.StackRank
		}
	}

	target.StackRank = top + 1
	return result, true
}

/*
GroupByAlbum pairs each album, in fetch order, with its photos in
fetch order. Photos whose album was never fetched are left out.
*/
func GroupByAlbum(albums []models.Album, photos []models.Photo) []models.AlbumGroup {
	return slices.Map(albums, func(album models.Album, index int) models.AlbumGroup {
		group := models.AlbumGroup{
			Album:  album,
			Photos: []models.Photo{},
		}

		for _, photo := range photos {
			if photo.AlbumID == album.ID {
				group.Photos = append(group.Photos, photo)
			}
		}

		return group
	})
}

// RenderStateOf: error beats loading, loading beats ready.
func RenderStateOf(albums []models.Album, photos []models.Photo, errMessage string) models.RenderState {
	if errMessage != "" {
		return models.RenderError
	}

	if len(albums) == 0 || len(photos) == 0 {
		return models.RenderLoading
	}

	return models.RenderReady
}

func indexOfPhoto(photos []models.Photo, photoID int) int {
	for index, photo := range photos {
		if photo.ID == photoID {
			return index
		}
	}

	return -1
}
