package models

// Viewer is what the session cookie carries between requests.
type Viewer struct {
	SessionID string
}
