package models

import "fmt"

const (
	SourceAlbums = "albums"
	SourcePhotos = "photos"
)

/*
LoadError is the only failure kind the gallery knows about. It names
the collection that failed and carries the transport or decoding
error underneath.
*/
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading %s: %s", e.Source, e.Err.Error())
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
