package model

type CourseCategory struct {
	CategoryName string `json:"categoryName"`
}

type CourseCreateRequest struct {
	CourseName       string           `json:"courseName"`
	SubTitle         string           `json:"subTitle,omitempty"`
	Description      string           `json:"description,omitempty"`
	CourseCategories []CourseCategory `json:"courseCategories,omitempty"`
}

type CourseUpdateRequest struct {
	CourseName       string           `json:"courseName,omitempty"`
	SubTitle         string           `json:"subTitle,omitempty"`
	Description      string           `json:"description,omitempty"`
	CourseCategories []CourseCategory `json:"courseCategories,omitempty"`
}
