package models

type RenderState int

const (
	RenderLoading RenderState = iota
	RenderError
	RenderReady
)

func (s RenderState) String() string {
	switch s {
	case RenderError:
		return "error"
	case RenderReady:
		return "ready"
	default:
		return "loading"
	}
}
