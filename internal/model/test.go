package model

type FullTestCreateRequest struct {
	SessionID       string         `json:"session_id"`
	Name            string         `json:"name"`
	DescriptionHTML string         `json:"description_html"`
	Questions       map[string]any `json:"questions"`
}

type TestFormCreateRequest struct {
	SessionID       string `json:"session_id"`
	Name            string `json:"name"`
	DescriptionHTML string `json:"description_html"`
}

type AddQuestionsRequest struct {
	SessionID   string         `json:"session_id"`
	FormIDValue string         `json:"form_id_value"`
	Questions   map[string]any `json:"questions"`
}
