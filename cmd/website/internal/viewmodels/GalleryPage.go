package viewmodels

import (
	"fmt"

	"github.com/adampresley/adamgokit/slices"
	"github.com/adampresley/photogallery/pkg/models"
	"github.com/adampresley/photogallery/pkg/services"
	"github.com/dustin/go-humanize/english"
	"github.com/gosimple/slug"
)

type GalleryPage struct {
	BaseViewModel

	State     string
	IsLoading bool
	IsReady   bool
	Albums    []GalleryAlbum
}

type GalleryAlbum struct {
	ID         int
	Title      string
	Anchor     string
	PhotoCount string
	Photos     []PhotoTile
}

/*
NewGalleryPage derives everything the page shows from one snapshot.
Albums are only grouped when the snapshot is ready; an error replaces
the gallery entirely.
*/
func NewGalleryPage(snapshot services.GallerySnapshot, isHtmx bool) GalleryPage {
	state := snapshot.RenderState()

	result := GalleryPage{
		BaseViewModel: BaseViewModel{
			IsHtmx: isHtmx,
		},
		State:     state.String(),
		IsLoading: state == models.RenderLoading,
		IsReady:   state == models.RenderReady,
		Albums:    []GalleryAlbum{},
	}

	switch state {
	case models.RenderError:
		result.IsError = true
		result.Message = snapshot.Error

	case models.RenderReady:
		result.Albums = slices.Map(snapshot.Groups(), func(group models.AlbumGroup, index int) GalleryAlbum {
			return newGalleryAlbum(group)
		})
	}

	return result
}

func newGalleryAlbum(group models.AlbumGroup) GalleryAlbum {
	return GalleryAlbum{
		ID:         group.Album.ID,
		Title:      group.Album.Title,
		Anchor:     fmt.Sprintf("album-%d-%s", group.Album.ID, slug.Make(group.Album.Title)),
		PhotoCount: english.Plural(len(group.Photos), "photo", "photos"),
		Photos: slices.Map(group.Photos, func(photo models.Photo, index int) PhotoTile {
			return NewPhotoTile(photo)
		}),
	}
}
