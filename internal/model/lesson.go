package model

// LessonCreateRequest creates a content lesson in two upstream calls: the
// session itself, then its HTML body as an attached content file.
type LessonCreateRequest struct {
	SessionData     map[string]any `json:"session_data"`
	ContentHTML     string         `json:"content_html"`
	ContentFilename string         `json:"content_filename"`
}

type LessonUpdateRequest struct {
	Updates map[string]any `json:"updates"`
}
