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

// JobsClient covers the public job board: search, detail, apply, sitemap.
type JobsClient struct {
	api *api.Client
}

// Search lists published job posts matching the given filters.
func (c *JobsClient) Search(ctx context.Context, params domain.JobSearchParams) (*domain.JobList, error) {
	values := url.Values{}
	if params.Keyword != "" {
		values.Set("keyword", params.Keyword)
	}
	if params.LocationCode != "" {
		values.Set("location_code", params.LocationCode)
	}
	if params.JobCategory != "" {
		values.Set("job_category", params.JobCategory)
	}
	if params.ShiftType != "" {
		values.Set("shift_type", params.ShiftType)
	}
	if params.EmploymentType != "" {
		values.Set("employment_type", params.EmploymentType)
	}
	if params.SalaryMin > 0 {
		values.Set("salary_min", strconv.FormatInt(params.SalaryMin, 10))
	}
	if params.Sort != "" {
		values.Set("sort", params.Sort)
	}
	pagination.Params{Page: params.Page, Size: params.Size}.Apply(values)

	var out domain.JobList
	if err := c.api.Get(ctx, "/jobs?"+values.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches one job post.
func (c *JobsClient) Get(ctx context.Context, jobID string) (*domain.JobPostDetail, error) {
	var out domain.JobPostDetail
	if err := c.api.Get(ctx, "/jobs/"+jobID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Apply submits an application to a job post with the given resume.
func (c *JobsClient) Apply(ctx context.Context, jobID, resumeID string) (*domain.Application, error) {
	body := map[string]string{"resume_id": resumeID}
	var out domain.Application
	if err := c.api.Post(ctx, fmt.Sprintf("/jobs/%s/apply", jobID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sitemap lists all published job post ids for feed generation.
func (c *JobsClient) Sitemap(ctx context.Context) ([]domain.JobSitemapEntry, error) {
	var out []domain.JobSitemapEntry
	if err := c.api.Get(ctx, "/jobs/sitemap", &out); err != nil {
		return nil, err
	}
	return out, nil
}
