package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/adampresley/photogallery/pkg/models"
	"github.com/goccy/go-json"
)

type PhotoSourcer interface {
	LoadAlbums(ctx context.Context) ([]models.Album, error)
	LoadPhotos(ctx context.Context) ([]models.Photo, error)
}

type PhotoSourceServiceConfig struct {
	AlbumsURL string
	PhotosURL string

	// FetchTimeout of zero means requests never time out.
	FetchTimeout time.Duration
	HttpClient   *http.Client
}

type PhotoSourceService struct {
	albumsURL  string
	photosURL  string
	httpClient *http.Client
}

func NewPhotoSourceService(config PhotoSourceServiceConfig) PhotoSourceService {
	client := config.HttpClient

	if client == nil {
		client = &http.Client{
			Timeout: config.FetchTimeout,
		}
	}

	return PhotoSourceService{
		albumsURL:  config.AlbumsURL,
		photosURL:  config.PhotosURL,
		httpClient: client,
	}
}

/*
LoadAlbums fetches the album list once. Any failure comes back as a
*models.LoadError naming the albums source.
*/
func (s PhotoSourceService) LoadAlbums(ctx context.Context) ([]models.Album, error) {
	var (
		err    error
		albums []models.Album
	)

	if err = s.getJSON(ctx, s.albumsURL, &albums); err != nil {
		return nil, &models.LoadError{Source: models.SourceAlbums, Err: err}
	}

	return albums, nil
}

/*
LoadPhotos fetches the photo list once. Every photo starts out in
thumbnail mode and not raised.
*/
func (s PhotoSourceService) LoadPhotos(ctx context.Context) ([]models.Photo, error) {
	var (
		err    error
		photos []models.Photo
	)

	if err = s.getJSON(ctx, s.photosURL, &photos); err != nil {
		return nil, &models.LoadError{Source: models.SourcePhotos, Err: err}
	}

	for index := range photos {
		photos[index].DisplayMode = models.Thumbnail
		photos[index].StackRank = 0
	}

	return photos, nil
}

func (s PhotoSourceService) getJSON(ctx context.Context, url string, dest any) error {
	var (
		err      error
		request  *http.Request
		response *http.Response
	)

	if request, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil); err != nil {
		return fmt.Errorf("error building request for '%s': %w", url, err)
	}

	request.Header.Set("Accept", "application/json")

	if response, err = s.httpClient.Do(request); err != nil {
		return fmt.Errorf("error requesting '%s': %w", url, err)
	}

	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("error requesting '%s', status: %s", url, response.Status)
	}

	if err = json.NewDecoder(response.Body).Decode(dest); err != nil {
		return fmt.Errorf("error decoding response from '%s': %w", url, err)
	}

	return nil
}
