package model

type ChapterCreateRequest struct {
	CourseID string `json:"courseId"`
	Name     string `json:"name"`
}

type ChapterUpdateRequest struct {
	Name         string `json:"name,omitempty"`
	SectionIndex *int   `json:"sectionIndex,omitempty"`
}
