package model

// Start/end times in the workshop requests use the wrapper's human format
// DD-MM-YYYY HH:MMAM/PM and are converted to epoch milliseconds before
// forwarding.
type CourseLiveCreateRequest struct {
	Name            string `json:"name"`
	DescriptionHTML string `json:"description_html"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

type InviteLearnerRequest struct {
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	CourseID        string `json:"course_id,omitempty"`
	SessionID       string `json:"session_id,omitempty"`
	IsAccessGranted *bool  `json:"is_access_granted,omitempty"`
	ExpiryTime      *int64 `json:"expiry_time,omitempty"`
	ExpiryDuration  string `json:"expiry_duration,omitempty"`
}

type GlobalWorkshopCreateRequest struct {
	Name            string `json:"name"`
	DescriptionHTML string `json:"description_html"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

type OccurrenceCreateRequest struct {
	SessionID        string         `json:"sessionId"`
	ScheduledTime    string         `json:"scheduledTime"`
	ScheduledEndTime string         `json:"scheduledEndTime"`
	DurationTime     *int           `json:"durationTime,omitempty"`
	Recurrence       map[string]any `json:"recurrence,omitempty"`
}
