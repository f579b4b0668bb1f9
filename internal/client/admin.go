package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/coosanta-bit/medi/internal/api"
	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/pkg/pagination"
)

// AdminClient covers the moderation console. Every call requires an
// elevated-role account; the backend enforces this, the admin guard merely
// avoids pointless calls.
type AdminClient struct {
	api *api.Client
}

// Dashboard fetches the moderation console summary.
func (c *AdminClient) Dashboard(ctx context.Context) (*domain.AdminDashboard, error) {
	var out domain.AdminDashboard
	if err := c.api.Get(ctx, "/admin", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListVerifications lists employer verification requests by status.
func (c *AdminClient) ListVerifications(ctx context.Context, status domain.VerificationStatus, page pagination.Params) (*domain.VerificationList, error) {
	values := url.Values{}
	if status != "" {
		values.Set("status", string(status))
	}
	page.Apply(values)

	var out domain.VerificationList
	if err := c.api.Get(ctx, "/admin/verifications?"+values.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewVerification approves or rejects a verification request.
func (c *AdminClient) ReviewVerification(ctx context.Context, verificationID string, input domain.VerificationReviewInput) (*domain.Verification, error) {
	var out domain.Verification
	if err := c.api.Patch(ctx, "/admin/verifications/"+verificationID, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReports lists user reports by status.
func (c *AdminClient) ListReports(ctx context.Context, status string, page pagination.Params) (*domain.ReportList, error) {
	values := url.Values{}
	if status != "" {
		values.Set("status", status)
	}
	page.Apply(values)

	var out domain.ReportList
	if err := c.api.Get(ctx, "/admin/reports?"+values.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateReport resolves or dismisses a report.
func (c *AdminClient) UpdateReport(ctx context.Context, reportID string, input domain.ReportUpdateInput) (*domain.Report, error) {
	var out domain.Report
	if err := c.api.Patch(ctx, "/admin/reports/"+reportID, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListJobModeration lists job posts in the moderation queue.
func (c *AdminClient) ListJobModeration(ctx context.Context, page pagination.Params) (*domain.JobModerationList, error) {
	values := url.Values{}
	page.Apply(values)

	var out domain.JobModerationList
	if err := c.api.Get(ctx, "/admin/moderation/jobs?"+values.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BlindJob hides a job post from the public board.
func (c *AdminClient) BlindJob(ctx context.Context, jobID string) error {
	return c.api.Post(ctx, fmt.Sprintf("/admin/moderation/jobs/%s/blind", jobID), nil, nil)
}

// UnblindJob restores a blinded job post.
func (c *AdminClient) UnblindJob(ctx context.Context, jobID string) error {
	return c.api.Post(ctx, fmt.Sprintf("/admin/moderation/jobs/%s/unblind", jobID), nil, nil)
}

// ListUsers lists accounts, optionally filtered by a search query.
func (c *AdminClient) ListUsers(ctx context.Context, query string, page pagination.Params) (*domain.UserAdminList, error) {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	page.Apply(values)

	var out domain.UserAdminList
	if err := c.api.Get(ctx, "/admin/users?"+values.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserStatus changes an account's lifecycle status.
func (c *AdminClient) UpdateUserStatus(ctx context.Context, userID string, input domain.UserStatusInput) (*domain.UserAdmin, error) {
	var out domain.UserAdmin
	if err := c.api.Patch(ctx, fmt.Sprintf("/admin/users/%s/status", userID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListLogs lists the admin audit trail.
func (c *AdminClient) ListLogs(ctx context.Context, page pagination.Params) (*domain.AdminLogList, error) {
	values := url.Values{}
	page.Apply(values)

	var out domain.AdminLogList
	if err := c.api.Get(ctx, "/admin/logs?"+values.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
