package domain

import "time"

// ApplicationStatus tracks an application through the hiring pipeline.
type ApplicationStatus string

const (
	ApplicationApplied   ApplicationStatus = "APPLIED"
	ApplicationViewed    ApplicationStatus = "VIEWED"
	ApplicationInterview ApplicationStatus = "INTERVIEW"
	ApplicationOffered   ApplicationStatus = "OFFERED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationWithdrawn ApplicationStatus = "WITHDRAWN"
)

// Application is one job application row.
type Application struct {
	ID              string    `json:"id"`
	JobPostID       string    `json:"job_post_id"`
	JobTitle        *string   `json:"job_title"`
	CompanyName     *string   `json:"company_name"`
	ApplicantUserID string    `json:"applicant_user_id"`
	ApplicantName   *string   `json:"applicant_name"`
	ResumeID        *string   `json:"resume_id"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ApplicationList wraps application rows with a total count.
type ApplicationList struct {
	Items []Application `json:"items"`
	Total int           `json:"total"`
}

// StatusHistory is one status transition on an application.
type StatusHistory struct {
	ID         string    `json:"id"`
	FromStatus *string   `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  *string   `json:"changed_by"`
	Note       *string   `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// ApplicationNote is an employer-side note on an application.
type ApplicationNote struct {
	ID           string    `json:"id"`
	AuthorUserID string    `json:"author_user_id"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}

// ApplicationDetail is an application with its status history and notes.
type ApplicationDetail struct {
	Application
	StatusHistory []StatusHistory   `json:"status_history"`
	Notes         []ApplicationNote `json:"notes"`
}
