package model

// UpstreamResult carries one TrainerCentral answer back through the layers
// untouched. The body is relayed byte for byte, success or not.
type UpstreamResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
