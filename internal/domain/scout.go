package domain

import "time"

// ScoutStatus tracks a scout offer from send to response.
type ScoutStatus string

const (
	ScoutSent     ScoutStatus = "SENT"
	ScoutRead     ScoutStatus = "READ"
	ScoutAccepted ScoutStatus = "ACCEPTED"
	ScoutDeclined ScoutStatus = "DECLINED"
)

// TalentSummary is an anonymized public resume in the talent search.
type TalentSummary struct {
	ID             string    `json:"id"`
	DesiredJob     *string   `json:"desired_job"`
	DesiredRegion  *string   `json:"desired_region"`
	IsExperienced  bool      `json:"is_experienced"`
	LicenseTypes   []string  `json:"license_types"`
	CareerCount    int       `json:"career_count"`
	SummaryPreview *string   `json:"summary_preview"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TalentList is a paginated talent search page.
type TalentList struct {
	Items []TalentSummary `json:"items"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int             `json:"total"`
}

// TalentSearchParams filters the employer talent search.
type TalentSearchParams struct {
	DesiredJob    string
	DesiredRegion string
	Experienced   *bool
	LicenseType   string
	Page          int
	Size          int
}

// Scout is one scout offer.
type Scout struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	CompanyName *string   `json:"company_name"`
	UserID      string    `json:"user_id"`
	JobPostID   *string   `json:"job_post_id"`
	JobTitle    *string   `json:"job_title"`
	Status      string    `json:"status"`
	Message     *string   `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ScoutList wraps scout rows with a total count.
type ScoutList struct {
	Items []Scout `json:"items"`
	Total int     `json:"total"`
}

// ScoutCreateInput sends a scout offer to a public resume.
type ScoutCreateInput struct {
	ResumeID  string `json:"resume_id" validate:"required,uuid"`
	JobPostID string `json:"job_post_id,omitempty" validate:"omitempty,uuid"`
	Message   string `json:"message,omitempty" validate:"omitempty,max=1000"`
}
