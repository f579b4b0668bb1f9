package domain

// BizDashboard is the employer landing summary.
type BizDashboard struct {
	ActiveJobs       int           `json:"active_jobs"`
	TotalApplicants  int           `json:"total_applicants"`
	NewApplicants    int           `json:"new_applicants"`
	CreditBalance    int64         `json:"credit_balance"`
	RecentApplicants []Application `json:"recent_applicants"`
}

// ApplicantStatusInput moves an application through the hiring pipeline.
type ApplicantStatusInput struct {
	Status ApplicationStatus `json:"status" validate:"required,oneof=APPLIED VIEWED INTERVIEW OFFERED REJECTED WITHDRAWN"`
	Note   string            `json:"note,omitempty" validate:"omitempty,max=500"`
}

// ApplicantNoteInput adds an employer note to an application.
type ApplicantNoteInput struct {
	Note string `json:"note" validate:"required,max=2000"`
}
