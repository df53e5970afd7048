package models

type Album struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

/*
AlbumGroup is an album paired with the photos that belong to it,
in fetch order.
*/
type AlbumGroup struct {
	Album  Album
	Photos []Photo
}
