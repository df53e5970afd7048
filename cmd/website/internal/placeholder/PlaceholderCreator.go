package placeholder

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"github.com/adampresley/photogallery/pkg/models"
	"github.com/nfnt/resize"
)

/*
PlaceholderCreator produces the tiny, blurry stand-in image a photo
tile shows while its real source is still loading.
*/
type PlaceholderCreator interface {
	Create(ctx context.Context, photo models.Photo) ([]byte, error)
}

type PlaceholderCreatorConfig struct {
	HttpClient *http.Client
	MaxSize    uint
}

type PlaceholderCreatorService struct {
	httpClient *http.Client
	maxSize    uint
}

func NewPlaceholderCreatorService(config PlaceholderCreatorConfig) PlaceholderCreatorService {
	if config.HttpClient == nil {
		config.HttpClient = http.DefaultClient
	}

	if config.MaxSize == 0 {
		config.MaxSize = 24
	}

	return PlaceholderCreatorService{
		httpClient: config.HttpClient,
		maxSize:    config.MaxSize,
	}
}

/*
Create downloads the photo's thumbnail and shrinks it so its longest
edge is maxSize. The result is JPEG encoded.
*/
func (c PlaceholderCreatorService) Create(ctx context.Context, photo models.Photo) ([]byte, error) {
	var (
		err error
		img image.Image
		buf bytes.Buffer
	)

	if img, err = c.resizeUrl(ctx, photo.ThumbnailURL, c.maxSize); err != nil {
		return nil, fmt.Errorf("error creating placeholder for photo %d: %w", photo.ID, err)
	}

	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 60}); err != nil {
		return nil, fmt.Errorf("error encoding placeholder for photo %d: %w", photo.ID, err)
	}

	return buf.Bytes(), nil
}

func (c PlaceholderCreatorService) resizeUrl(ctx context.Context, url string, maxSize uint) (image.Image, error) {
	var (
		err      error
		request  *http.Request
		response *http.Response
	)

	if request, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil); err != nil {
		return nil, fmt.Errorf("error building request for '%s': %w", url, err)
	}

	if response, err = c.httpClient.Do(request); err != nil {
		return nil, fmt.Errorf("error downloading image from '%s': %w", url, err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading image from '%s', status: %s", url, response.Status)
	}

	return c.resizeReader(response.Body, maxSize)
}

func (c PlaceholderCreatorService) resizeReader(r io.Reader, maxSize uint) (image.Image, error) {
	var (
		err error
		img image.Image
	)

	if img, _, err = image.Decode(r); err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	return c.resize(img, maxSize), nil
}

func (c PlaceholderCreatorService) resize(img image.Image, maxSize uint) image.Image {
	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	var newWidth, newHeight uint

	if width > height {
		newWidth = maxSize
		newHeight = max(1, uint(float64(height)*(float64(maxSize)/float64(width))))
	} else {
		newHeight = maxSize
		newWidth = max(1, uint(float64(width)*(float64(maxSize)/float64(height))))
	}

	// Bilinear is plenty for something this small and blurred by CSS anyway
	return resize.Resize(newWidth, newHeight, img, resize.Bilinear)
}
