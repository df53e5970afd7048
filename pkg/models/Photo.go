package models

type DisplayMode int

const (
	Thumbnail DisplayMode = iota
	Full
)

func (m DisplayMode) String() string {
	if m == Full {
		return "full"
	}

	return "thumbnail"
}

/*
Photo is a photo record as fetched from the photos endpoint, plus
the client-local presentation state. DisplayMode and StackRank never
come from the server.
*/
type Photo struct {
	ID           int    `json:"id"`
	AlbumID      int    `json:"albumId"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
	FullURL      string `json:"url"`

	DisplayMode DisplayMode `json:"-"`
	StackRank   int         `json:"-"`
}

// DisplayedURL is the image source the view should request.
func (p Photo) DisplayedURL() string {
	if p.DisplayMode == Full {
		return p.FullURL
	}

	return p.ThumbnailURL
}

func (p Photo) IsRaised() bool {
	return p.StackRank > 0
}
