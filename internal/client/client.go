// Package client provides typed, per-section clients over the core API
// client. Each sub-client maps one screenful of backend routes to methods
// returning domain types; none of them touch tokens or session state.
package client

import (
	"github.com/coosanta-bit/medi/internal/api"
)

// Set bundles the sub-clients for every section of the application.
type Set struct {
	Jobs    *JobsClient
	Me      *MeClient
	Biz     *BizClient
	Billing *BillingClient
	Admin   *AdminClient
}

// NewSet creates sub-clients sharing one core API client.
func NewSet(apiClient *api.Client) *Set {
	return &Set{
		Jobs:    &JobsClient{api: apiClient},
		Me:      &MeClient{api: apiClient},
		Biz:     &BizClient{api: apiClient},
		Billing: &BillingClient{api: apiClient},
		Admin:   &AdminClient{api: apiClient},
	}
}
