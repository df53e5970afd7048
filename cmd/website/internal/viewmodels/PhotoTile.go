package viewmodels

import (
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/adampresley/photogallery/pkg/models"
)

var photoTileTemplate = template.Must(template.New("photoTile").Parse(`<figure id="photo-{{.ID}}" class="photo-tile{{if .IsRaised}} raised{{end}}" style="z-index: {{.StackRank}}">
	<img
		src="{{.PlaceholderURL}}"
		data-src="{{.Src}}"
		alt="{{.Title}}"
		title="{{.Title}}"
		loading="lazy"
		class="photo photo-{{.DisplayMode}} photo-pending"
		hx-put="/photos/{{.ID}}/resolution"
		hx-target="#photo-{{.ID}}"
		hx-swap="outerHTML"
	/>
	<button class="bring-to-front" hx-put="/photos/{{.ID}}/stack" hx-target="#photo-{{.ID}}" hx-swap="outerHTML">
		{{if .IsRaised}}Send back{{else}}Bring to front{{end}}
	</button>
</figure>`))

/*
PhotoTile starts out showing its placeholder. js/pages/gallery.js
swaps in Src once the placeholder has loaded, so both requests stay
lazy.
*/
type PhotoTile struct {
	ID             int
	Title          string
	Src            string
	PlaceholderURL string
	DisplayMode    string
	StackRank      int
	IsRaised       bool
}

func NewPhotoTile(photo models.Photo) PhotoTile {
	return PhotoTile{
		ID:             photo.ID,
		Title:          photo.Title,
		Src:            photo.DisplayedURL(),
		PlaceholderURL: fmt.Sprintf("/photos/%d/placeholder", photo.ID),
		DisplayMode:    photo.DisplayMode.String(),
		StackRank:      photo.StackRank,
		IsRaised:       photo.IsRaised(),
	}
}

func (t PhotoTile) Render() (string, error) {
	markup := strings.Builder{}

	if err := photoTileTemplate.Execute(&markup, t); err != nil {
		return "", fmt.Errorf("error rendering tile for photo %d: %w", t.ID, err)
	}

	return markup.String(), nil
}

// HTML is for page templates, which cannot handle an error return.
func (t PhotoTile) HTML() template.HTML {
	markup, err := t.Render()

	if err != nil {
		slog.Error("error rendering photo tile", "photoID", t.ID, "error", err)
		return ""
	}

	return template.HTML(markup)
}
