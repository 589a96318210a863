package model

type AssignmentCreateRequest struct {
	AssignmentData      map[string]any `json:"assignment_data"`
	InstructionHTML     string         `json:"instruction_html"`
	InstructionFilename string         `json:"instruction_filename"`
	ViewType            int            `json:"view_type"`
}
