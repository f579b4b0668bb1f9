package domain

import "time"

// VerificationStatus tracks an employer verification request.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// Verification is an employer's business verification request.
type Verification struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	CompanyName       *string   `json:"company_name"`
	CompanyBusinessNo *string   `json:"company_business_no"`
	Status            string    `json:"status"`
	FileKey           *string   `json:"file_key"`
	RejectReason      *string   `json:"reject_reason"`
	ReviewedBy        *string   `json:"reviewed_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// VerificationList wraps verification requests with a total count.
type VerificationList struct {
	Items []Verification `json:"items"`
	Total int            `json:"total"`
}

// VerificationSubmitInput submits business registration evidence.
type VerificationSubmitInput struct {
	FileKey string `json:"file_key" validate:"required"`
}

// VerificationReviewInput approves or rejects a verification request.
type VerificationReviewInput struct {
	Status       VerificationStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	RejectReason string             `json:"reject_reason,omitempty" validate:"required_if=Status REJECTED"`
}

// Report is a user-submitted report against a job post or user.
type Report struct {
	ID             string    `json:"id"`
	TargetType     string    `json:"target_type"`
	TargetID       string    `json:"target_id"`
	ReporterUserID *string   `json:"reporter_user_id"`
	ReasonCode     string    `json:"reason_code"`
	Detail         *string   `json:"detail"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ReportList wraps reports with a total count.
type ReportList struct {
	Items []Report `json:"items"`
	Total int      `json:"total"`
}

// ReportCreateInput files a report.
type ReportCreateInput struct {
	TargetType string `json:"target_type" validate:"required,oneof=JOB_POST USER"`
	TargetID   string `json:"target_id" validate:"required,uuid"`
	ReasonCode string `json:"reason_code" validate:"required"`
	Detail     string `json:"detail,omitempty" validate:"omitempty,max=2000"`
}

// ReportUpdateInput resolves or dismisses a report.
type ReportUpdateInput struct {
	Status string `json:"status" validate:"required,oneof=RESOLVED DISMISSED"`
}

// AdminDashboard is the moderation console landing summary.
type AdminDashboard struct {
	PendingVerifications int `json:"pending_verifications"`
	PendingReports       int `json:"pending_reports"`
	PublishedJobs        int `json:"published_jobs"`
	TotalUsers           int `json:"total_users"`
	TodayApplications    int `json:"today_applications"`
}

// JobModerationItem is a job post in the moderation queue.
type JobModerationItem struct {
	ID          string     `json:"id"`
	CompanyName *string    `json:"company_name"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	ViewCount   int        `json:"view_count"`
	ReportCount int        `json:"report_count"`
}

// JobModerationList wraps the moderation queue with a total count.
type JobModerationList struct {
	Items []JobModerationItem `json:"items"`
	Total int                 `json:"total"`
}

// UserAdmin is a user row in the admin console.
type UserAdmin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UserAdminList wraps user rows with a total count.
type UserAdminList struct {
	Items []UserAdmin `json:"items"`
	Total int         `json:"total"`
}

// UserStatusInput changes an account's lifecycle status.
type UserStatusInput struct {
	Status UserStatus `json:"status" validate:"required,oneof=ACTIVE SUSPENDED DELETED DORMANT"`
}

// AdminLog is one audit log row.
type AdminLog struct {
	ID          string         `json:"id"`
	AdminUserID string         `json:"admin_user_id"`
	Action      string         `json:"action"`
	TargetType  *string        `json:"target_type"`
	TargetID    *string        `json:"target_id"`
	Meta        map[string]any `json:"meta_json"`
	CreatedAt   time.Time      `json:"created_at"`
}

// AdminLogList wraps audit rows with a total count.
type AdminLogList struct {
	Items []AdminLog `json:"items"`
	Total int        `json:"total"`
}
