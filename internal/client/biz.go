package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/coosanta-bit/medi/internal/api"
	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/pkg/pagination"
)

// BizClient covers the employer area: dashboard, verification, job postings,
// applicant tracking, talent search, scouts, and reports.
type BizClient struct {
	api *api.Client
}

// Dashboard fetches the employer landing summary.
func (c *BizClient) Dashboard(ctx context.Context) (*domain.BizDashboard, error) {
	var out domain.BizDashboard
	if err := c.api.Get(ctx, "/biz", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Verification ---

// GetVerification fetches the company's latest verification request, if any.
func (c *BizClient) GetVerification(ctx context.Context) (*domain.Verification, error) {
	var out *domain.Verification
	if err := c.api.Get(ctx, "/biz/verify", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitVerification submits business registration evidence for review.
func (c *BizClient) SubmitVerification(ctx context.Context, input domain.VerificationSubmitInput) (*domain.Verification, error) {
	var out domain.Verification
	if err := c.api.Post(ctx, "/biz/verify", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReport files a report against a job post or user.
func (c *BizClient) CreateReport(ctx context.Context, input domain.ReportCreateInput) (*domain.Report, error) {
	var out domain.Report
	if err := c.api.Post(ctx, "/biz/reports", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Job postings ---

// ListJobs lists the company's own job posts, drafts included.
func (c *BizClient) ListJobs(ctx context.Context, page pagination.Params) (*domain.JobList, error) {
	values := url.Values{}
	page.Apply(values)

	var out domain.JobList
	if err := c.api.Get(ctx, "/biz/jobs?"+values.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateJob creates a draft job post.
func (c *BizClient) CreateJob(ctx context.Context, input domain.JobPostInput) (*domain.JobPostDetail, error) {
	var out domain.JobPostDetail
	if err := c.api.Post(ctx, "/biz/jobs", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateJob applies a partial update to a job post.
func (c *BizClient) UpdateJob(ctx context.Context, jobID string, input domain.JobPostInput) (*domain.JobPostDetail, error) {
	var out domain.JobPostDetail
	if err := c.api.Patch(ctx, "/biz/jobs/"+jobID, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublishJob publishes a draft job post.
func (c *BizClient) PublishJob(ctx context.Context, jobID string) (*domain.JobPostDetail, error) {
	var out domain.JobPostDetail
	if err := c.api.Post(ctx, fmt.Sprintf("/biz/jobs/%s/publish", jobID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CloseJob closes a published job post.
func (c *BizClient) CloseJob(ctx context.Context, jobID string) (*domain.JobPostDetail, error) {
	var out domain.JobPostDetail
	if err := c.api.Post(ctx, fmt.Sprintf("/biz/jobs/%s/close", jobID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Applicant tracking ---

// ListApplicants lists applications to the company's job posts. jobID narrows
// to one posting when non-empty.
func (c *BizClient) ListApplicants(ctx context.Context, jobID string, status domain.ApplicationStatus) (*domain.ApplicationList, error) {
	values := url.Values{}
	if jobID != "" {
		values.Set("job_post_id", jobID)
	}
	if status != "" {
		values.Set("status", string(status))
	}

	path := "/biz/applicants"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var out domain.ApplicationList
	if err := c.api.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetApplicant fetches one application with history and notes.
func (c *BizClient) GetApplicant(ctx context.Context, applicationID string) (*domain.ApplicationDetail, error) {
	var out domain.ApplicationDetail
	if err := c.api.Get(ctx, "/biz/applicants/"+applicationID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateApplicantStatus moves an application through the hiring pipeline.
func (c *BizClient) UpdateApplicantStatus(ctx context.Context, applicationID string, input domain.ApplicantStatusInput) (*domain.ApplicationDetail, error) {
	var out domain.ApplicationDetail
	if err := c.api.Patch(ctx, fmt.Sprintf("/biz/applicants/%s/status", applicationID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddApplicantNote adds an internal note to an application.
func (c *BizClient) AddApplicantNote(ctx context.Context, applicationID string, input domain.ApplicantNoteInput) (*domain.ApplicationNote, error) {
	var out domain.ApplicationNote
	if err := c.api.Post(ctx, fmt.Sprintf("/biz/applicants/%s/notes", applicationID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Talent search and scouts ---

// SearchTalents lists public resumes matching the given filters.
func (c *BizClient) SearchTalents(ctx context.Context, params domain.TalentSearchParams) (*domain.TalentList, error) {
	values := url.Values{}
	if params.DesiredJob != "" {
		values.Set("desired_job", params.DesiredJob)
	}
	if params.DesiredRegion != "" {
		values.Set("desired_region", params.DesiredRegion)
	}
	if params.Experienced != nil {
		values.Set("experienced", strconv.FormatBool(*params.Experienced))
	}
	if params.LicenseType != "" {
		values.Set("license_type", params.LicenseType)
	}
	pagination.Params{Page: params.Page, Size: params.Size}.Apply(values)

	var out domain.TalentList
	if err := c.api.Get(ctx, "/biz/talents?"+values.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListScouts lists scout offers the company has sent.
func (c *BizClient) ListScouts(ctx context.Context) (*domain.ScoutList, error) {
	var out domain.ScoutList
	if err := c.api.Get(ctx, "/biz/scouts", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendScout sends a scout offer to a public resume.
func (c *BizClient) SendScout(ctx context.Context, input domain.ScoutCreateInput) (*domain.Scout, error) {
	var out domain.Scout
	if err := c.api.Post(ctx, "/biz/scouts", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
