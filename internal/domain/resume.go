package domain

import "time"

// ResumeVisibility controls whether a resume is discoverable by employers.
type ResumeVisibility string

const (
	ResumePrivate ResumeVisibility = "PRIVATE"
	ResumePublic  ResumeVisibility = "PUBLIC"
)

// ResumeLicense is a professional license attached to a resume.
type ResumeLicense struct {
	ID          string     `json:"id"`
	LicenseType string     `json:"license_type"`
	IssuedAt    *time.Time `json:"issued_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ResumeCareer is one career history entry on a resume.
type ResumeCareer struct {
	ID          string     `json:"id"`
	OrgName     string     `json:"org_name"`
	Role        *string    `json:"role"`
	Department  *string    `json:"department"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ResumeDetail is the full resume payload.
type ResumeDetail struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Title            string          `json:"title"`
	Visibility       string          `json:"visibility"`
	DesiredJob       *string         `json:"desired_job"`
	DesiredRegion    *string         `json:"desired_region"`
	DesiredShift     *string         `json:"desired_shift"`
	DesiredSalary    *string         `json:"desired_salary_type"`
	DesiredSalaryMin *int64          `json:"desired_salary_min"`
	Summary          *string         `json:"summary"`
	IsExperienced    bool            `json:"is_experienced"`
	Licenses         []ResumeLicense `json:"licenses"`
	Careers          []ResumeCareer  `json:"careers"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ResumeSummary is a resume as it appears in the member's resume list.
type ResumeSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Visibility    string    `json:"visibility"`
	DesiredJob    *string   `json:"desired_job"`
	IsExperienced bool      `json:"is_experienced"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ResumeList wraps the member's resumes.
type ResumeList struct {
	Items []ResumeSummary `json:"items"`
}

// ResumeLicenseInput adds a license to a resume.
type ResumeLicenseInput struct {
	LicenseType  string `json:"license_type" validate:"required"`
	LicenseNoEnc string `json:"license_no_enc,omitempty"`
	IssuedAt     string `json:"issued_at,omitempty"`
}

// ResumeCareerInput adds a career entry to a resume.
type ResumeCareerInput struct {
	OrgName     string `json:"org_name" validate:"required"`
	Role        string `json:"role,omitempty"`
	Department  string `json:"department,omitempty"`
	StartAt     string `json:"start_at" validate:"required"`
	EndAt       string `json:"end_at,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResumeInput creates or updates a resume.
type ResumeInput struct {
	Title            string               `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	DesiredJob       *string              `json:"desired_job,omitempty"`
	DesiredRegion    *string              `json:"desired_region,omitempty"`
	DesiredShift     *string              `json:"desired_shift,omitempty"`
	DesiredSalary    *string              `json:"desired_salary_type,omitempty"`
	DesiredSalaryMin *int64               `json:"desired_salary_min,omitempty"`
	Summary          *string              `json:"summary,omitempty"`
	IsExperienced    *bool                `json:"is_experienced,omitempty"`
	Licenses         []ResumeLicenseInput `json:"licenses,omitempty" validate:"omitempty,dive"`
	Careers          []ResumeCareerInput  `json:"careers,omitempty" validate:"omitempty,dive"`
}
