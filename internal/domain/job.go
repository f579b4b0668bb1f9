package domain

import "time"

// JobPostStatus is the publication lifecycle of a job post.
type JobPostStatus string

const (
	JobStatusDraft     JobPostStatus = "DRAFT"
	JobStatusPublished JobPostStatus = "PUBLISHED"
	JobStatusClosed    JobPostStatus = "CLOSED"
	JobStatusBlinded   JobPostStatus = "BLINDED"
	JobStatusExpired   JobPostStatus = "EXPIRED"
)

// ShiftType is the working shift pattern of a posting.
type ShiftType string

const (
	ShiftDay   ShiftType = "DAY"
	ShiftTwo   ShiftType = "2SHIFT"
	ShiftThree ShiftType = "3SHIFT"
	ShiftKeep  ShiftType = "KEEP"
	ShiftOther ShiftType = "OTHER"
)

// SalaryType is the salary basis of a posting.
type SalaryType string

const (
	SalaryAnnual     SalaryType = "ANNUAL"
	SalaryMonthly    SalaryType = "MONTHLY"
	SalaryHourly     SalaryType = "HOURLY"
	SalaryNegotiable SalaryType = "NEGOTIABLE"
)

// EmploymentType is the contract form of a posting.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "FULL_TIME"
	EmploymentPartTime EmploymentType = "PART_TIME"
	EmploymentContract EmploymentType = "CONTRACT"
	EmploymentIntern   EmploymentType = "INTERN"
	EmploymentOther    EmploymentType = "OTHER"
)

// JobPostSummary is a job post as it appears in search results.
type JobPostSummary struct {
	ID             string     `json:"id"`
	CompanyName    *string    `json:"company_name"`
	CompanyType    *string    `json:"company_type"`
	Status         string     `json:"status"`
	Title          string     `json:"title"`
	JobCategory    *string    `json:"job_category"`
	EmploymentType *string    `json:"employment_type"`
	ShiftType      *string    `json:"shift_type"`
	SalaryType     *string    `json:"salary_type"`
	SalaryMin      *int64     `json:"salary_min"`
	SalaryMax      *int64     `json:"salary_max"`
	LocationCode   *string    `json:"location_code"`
	LocationDetail *string    `json:"location_detail"`
	CloseAt        *time.Time `json:"close_at"`
	PublishedAt    *time.Time `json:"published_at"`
	ViewCount      int        `json:"view_count"`
}

// JobPostDetail is the full job post payload.
type JobPostDetail struct {
	ID             string     `json:"id"`
	CompanyID      string     `json:"company_id"`
	CompanyName    *string    `json:"company_name"`
	CompanyType    *string    `json:"company_type"`
	Status         string     `json:"status"`
	Title          string     `json:"title"`
	Body           *string    `json:"body"`
	JobCategory    *string    `json:"job_category"`
	Department     *string    `json:"department"`
	Specialty      *string    `json:"specialty"`
	EmploymentType *string    `json:"employment_type"`
	ShiftType      *string    `json:"shift_type"`
	SalaryType     *string    `json:"salary_type"`
	SalaryMin      *int64     `json:"salary_min"`
	SalaryMax      *int64     `json:"salary_max"`
	LocationCode   *string    `json:"location_code"`
	LocationDetail *string    `json:"location_detail"`
	ContactName    *string    `json:"contact_name"`
	ContactVisible bool       `json:"contact_visible"`
	CloseAt        *time.Time `json:"close_at"`
	PublishedAt    *time.Time `json:"published_at"`
	ViewCount      int        `json:"view_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// JobList is a paginated page of search results.
type JobList struct {
	Items []JobPostSummary `json:"items"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
	Total int              `json:"total"`
}

// JobSearchParams filters and orders the public job search.
type JobSearchParams struct {
	Keyword        string
	LocationCode   string
	JobCategory    string
	ShiftType      string
	EmploymentType string
	SalaryMin      int64
	Sort           string
	Page           int
	Size           int
}

// JobSitemapEntry is one row of the public sitemap feed.
type JobSitemapEntry struct {
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobPostInput creates or updates an employer job post. Pointer fields are
// omitted when nil so a PATCH only touches what the caller set.
type JobPostInput struct {
	Title          string  `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Body           *string `json:"body,omitempty"`
	JobCategory    *string `json:"job_category,omitempty"`
	Department     *string `json:"department,omitempty"`
	Specialty      *string `json:"specialty,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	ShiftType      *string `json:"shift_type,omitempty"`
	SalaryType     *string `json:"salary_type,omitempty"`
	SalaryMin      *int64  `json:"salary_min,omitempty"`
	SalaryMax      *int64  `json:"salary_max,omitempty"`
	LocationCode   *string `json:"location_code,omitempty"`
	LocationDetail *string `json:"location_detail,omitempty"`
	ContactName    *string `json:"contact_name,omitempty"`
	ContactVisible *bool   `json:"contact_visible,omitempty"`
	CloseAt        *string `json:"close_at,omitempty"`
}
