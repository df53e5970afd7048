package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adampresley/photogallery/pkg/models"
	"github.com/alitto/pond/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	albums    []models.Album
	photos    []models.Photo
	albumsErr error
	photosErr error
}

func (f fakeSource) LoadAlbums(ctx context.Context) ([]models.Album, error) {
	if f.albumsErr != nil {
		return nil, &models.LoadError{Source: models.SourceAlbums, Err: f.albumsErr}
	}

	return f.albums, nil
}

func (f fakeSource) LoadPhotos(ctx context.Context) ([]models.Photo, error) {
	if f.photosErr != nil {
		return nil, &models.LoadError{Source: models.SourcePhotos, Err: f.photosErr}
	}

	return f.photos, nil
}

func tripAlbums() []models.Album {
	return []models.Album{{ID: 1, Title: "Trip"}}
}

func tripPhotos() []models.Photo {
	return []models.Photo{
		{ID: 10, AlbumID: 1, Title: "Beach", ThumbnailURL: "t1", FullURL: "f1"},
		{ID: 11, AlbumID: 2, Title: "Orphan", ThumbnailURL: "t2", FullURL: "f2"},
	}
}

func loadGallery(t *testing.T, source PhotoSourcer) *Gallery {
	t.Helper()

	pool := pond.NewPool(2)
	gallery := NewGallery()
	gallery.Load(context.Background(), source, pool)

	require.NoError(t, pool.Stop().Wait())
	return gallery
}

func TestGroupByAlbumDropsOrphans(t *testing.T) {
	groups := GroupByAlbum(tripAlbums(), tripPhotos())

	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Album.ID)
	require.Len(t, groups[0].Photos, 1)
	assert.Equal(t, 10, groups[0].Photos[0].ID)
}

func TestGroupByAlbumKeepsFetchOrder(t *testing.T) {
	albums := []models.Album{{ID: 2, Title: "B"}, {ID: 1, Title: "A"}}
	photos := []models.Photo{
		{ID: 5, AlbumID: 1},
		{ID: 3, AlbumID: 2},
		{ID: 4, AlbumID: 1},
		{ID: 1, AlbumID: 2},
	}

	groups := GroupByAlbum(albums, photos)

	require.Len(t, groups, 2)
	assert.Equal(t, 2, groups[0].Album.ID)
	assert.Equal(t, []int{3, 1}, photoIDs(groups[0].Photos))
	assert.Equal(t, 1, groups[1].Album.ID)
	assert.Equal(t, []int{5, 4}, photoIDs(groups[1].Photos))

	for _, group := range groups {
		for _, photo := range group.Photos {
			assert.Equal(t, group.Album.ID, photo.AlbumID)
		}
	}
}

func TestGroupByAlbumEmptyAlbumStillListed(t *testing.T) {
	groups := GroupByAlbum([]models.Album{{ID: 7}}, tripPhotos())

	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Photos)
}

func TestToggleResolutionIsInvolution(t *testing.T) {
	photos := tripPhotos()

	once, ok := ToggleResolution(photos, 10)
	require.True(t, ok)
	assert.Equal(t, "f1", once[0].DisplayedURL())
	assert.Equal(t, models.Thumbnail, once[1].DisplayMode)

	twice, ok := ToggleResolution(once, 10)
	require.True(t, ok)
	assert.Equal(t, "t1", twice[0].DisplayedURL())
	assert.Equal(t, photos, twice)
}

func TestToggleResolutionDoesNotMutateInput(t *testing.T) {
	photos := tripPhotos()

	result, ok := ToggleResolution(photos, 11)
	require.True(t, ok)

	assert.Equal(t, models.Thumbnail, photos[1].DisplayMode)
	assert.Equal(t, models.Full, result[1].DisplayMode)
	assert.NotSame(t, &photos[0], &result[0])
}

func TestToggleResolutionUnknownIDChangesNothing(t *testing.T) {
	photos := tripPhotos()

	result, ok := ToggleResolution(photos, 99)

	assert.False(t, ok)
	assert.Equal(t, photos, result)
}

func TestToggleStackOrderRaisesAboveSiblings(t *testing.T) {
	photos := []models.Photo{
		{ID: 1, AlbumID: 1},
		{ID: 2, AlbumID: 1},
		{ID: 3, AlbumID: 2, StackRank: 9},
	}

	result, ok := ToggleStackOrder(photos, 1)
	require.True(t, ok)
	assert.Equal(t, 1, result[0].StackRank)

	result, ok = ToggleStackOrder(result, 2)
	require.True(t, ok)
	assert.Equal(t, 2, result[1].StackRank)
	assert.Equal(t, 1, result[0].StackRank)
	assert.Equal(t, 9, result[2].StackRank)

	assert.Zero(t, photos[0].StackRank)
	assert.Zero(t, photos[1].StackRank)
}

func TestToggleStackOrderTwiceLowersAgain(t *testing.T) {
	photos := tripPhotos()

	once, ok := ToggleStackOrder(photos, 10)
	require.True(t, ok)
	assert.True(t, once[0].IsRaised())

	twice, ok := ToggleStackOrder(once, 10)
	require.True(t, ok)
	assert.False(t, twice[0].IsRaised())
	assert.Equal(t, models.Thumbnail, twice[0].DisplayMode)
}

func TestToggleStackOrderUnknownID(t *testing.T) {
	photos := tripPhotos()

	result, ok := ToggleStackOrder(photos, 42)

	assert.False(t, ok)
	assert.Equal(t, photos, result)
}

func TestRenderStateOf(t *testing.T) {
	tests := []struct {
		name   string
		albums []models.Album
		photos []models.Photo
		err    string
		want   models.RenderState
	}{
		{name: "nothing yet", want: models.RenderLoading},
		{name: "albums only", albums: tripAlbums(), want: models.RenderLoading},
		{name: "photos only", photos: tripPhotos(), want: models.RenderLoading},
		{name: "both loaded", albums: tripAlbums(), photos: tripPhotos(), want: models.RenderReady},
		{name: "error while loading", err: "boom", want: models.RenderError},
		{name: "error beats ready", albums: tripAlbums(), photos: tripPhotos(), err: "boom", want: models.RenderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderStateOf(tt.albums, tt.photos, tt.err))
		})
	}
}

func TestGalleryLoadReady(t *testing.T) {
	gallery := loadGallery(t, fakeSource{albums: tripAlbums(), photos: tripPhotos()})
	snapshot := gallery.Snapshot()

	assert.Equal(t, models.RenderReady, snapshot.RenderState())
	assert.Empty(t, snapshot.Error)
	require.Len(t, snapshot.Groups(), 1)
}

func TestGalleryLoadAlbumsFailure(t *testing.T) {
	gallery := loadGallery(t, fakeSource{
		albumsErr: errors.New("connection refused"),
		photos:    tripPhotos(),
	})
	snapshot := gallery.Snapshot()

	assert.Equal(t, models.RenderError, snapshot.RenderState())
	assert.Equal(t, "error loading albums: connection refused", snapshot.Error)
}

func TestGalleryLoadBothFailKeepsOneMessage(t *testing.T) {
	gallery := loadGallery(t, fakeSource{
		albumsErr: errors.New("a"),
		photosErr: errors.New("p"),
	})
	snapshot := gallery.Snapshot()

	assert.Equal(t, models.RenderError, snapshot.RenderState())
	assert.Contains(t, []string{"error loading albums: a", "error loading photos: p"}, snapshot.Error)
}

func TestGalleryToggleReplacesSnapshot(t *testing.T) {
	gallery := loadGallery(t, fakeSource{albums: tripAlbums(), photos: tripPhotos()})
	before := gallery.Snapshot()

	photo, ok := gallery.ToggleResolution(10)
	require.True(t, ok)
	assert.Equal(t, models.Full, photo.DisplayMode)

	after := gallery.Snapshot()
	assert.Equal(t, models.Thumbnail, before.Photos[0].DisplayMode)
	assert.Equal(t, models.Full, after.Photos[0].DisplayMode)

	_, ok = gallery.ToggleResolution(1234)
	assert.False(t, ok)

	photo, ok = gallery.ToggleStackOrder(10)
	require.True(t, ok)
	assert.Equal(t, 1, photo.StackRank)
	assert.Equal(t, models.Full, photo.DisplayMode)

	found, ok := gallery.FindPhoto(10)
	require.True(t, ok)
	assert.Equal(t, photo, found)
}

func photoIDs(photos []models.Photo) []int {
	result := make([]int, 0, len(photos))

	for _, photo := range photos {
		result = append(result, photo.ID)
	}

	return result
}
