package client

import (
	"context"
	"fmt"

	"github.com/coosanta-bit/medi/internal/api"
	"github.com/coosanta-bit/medi/internal/domain"
)

// MeClient covers the member area: profile, resumes, applications,
// notifications, favorites, and received scouts.
type MeClient struct {
	api *api.Client
}

// Profile fetches the member's own identity.
func (c *MeClient) Profile(ctx context.Context) (*domain.AuthUser, error) {
	var out domain.AuthUser
	if err := c.api.Get(ctx, "/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Resumes ---

// ListResumes lists the member's resumes.
func (c *MeClient) ListResumes(ctx context.Context) (*domain.ResumeList, error) {
	var out domain.ResumeList
	if err := c.api.Get(ctx, "/me/resumes", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateResume creates a new resume.
func (c *MeClient) CreateResume(ctx context.Context, input domain.ResumeInput) (*domain.ResumeDetail, error) {
	var out domain.ResumeDetail
	if err := c.api.Post(ctx, "/me/resumes", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetResume fetches one resume with licenses and careers.
func (c *MeClient) GetResume(ctx context.Context, resumeID string) (*domain.ResumeDetail, error) {
	var out domain.ResumeDetail
	if err := c.api.Get(ctx, "/me/resumes/"+resumeID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateResume applies a partial update to a resume.
func (c *MeClient) UpdateResume(ctx context.Context, resumeID string, input domain.ResumeInput) (*domain.ResumeDetail, error) {
	var out domain.ResumeDetail
	if err := c.api.Patch(ctx, "/me/resumes/"+resumeID, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetResumeVisibility publishes or hides a resume from the talent search.
func (c *MeClient) SetResumeVisibility(ctx context.Context, resumeID string, visibility domain.ResumeVisibility) (*domain.ResumeDetail, error) {
	body := map[string]string{"visibility": string(visibility)}
	var out domain.ResumeDetail
	if err := c.api.Post(ctx, fmt.Sprintf("/me/resumes/%s/visibility", resumeID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Applications ---

// ListApplications lists the member's job applications.
func (c *MeClient) ListApplications(ctx context.Context) (*domain.ApplicationList, error) {
	var out domain.ApplicationList
	if err := c.api.Get(ctx, "/me/applications", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetApplication fetches one application with its status history.
func (c *MeClient) GetApplication(ctx context.Context, applicationID string) (*domain.ApplicationDetail, error) {
	var out domain.ApplicationDetail
	if err := c.api.Get(ctx, "/me/applications/"+applicationID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Notifications ---

// ListNotifications lists the member's notifications and the unread count.
func (c *MeClient) ListNotifications(ctx context.Context) (*domain.NotificationList, error) {
	var out domain.NotificationList
	if err := c.api.Get(ctx, "/me/notifications", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkNotificationRead marks one notification as read.
func (c *MeClient) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.api.Patch(ctx, fmt.Sprintf("/me/notifications/%s/read", notificationID), nil, nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (c *MeClient) MarkAllNotificationsRead(ctx context.Context) error {
	return c.api.Patch(ctx, "/me/notifications/read-all", nil, nil)
}

// --- Favorites ---

// ListFavorites lists the member's bookmarked job posts.
func (c *MeClient) ListFavorites(ctx context.Context) (*domain.FavoriteList, error) {
	var out domain.FavoriteList
	if err := c.api.Get(ctx, "/me/favorites", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleFavorite bookmarks a job post, or removes the bookmark if present.
func (c *MeClient) ToggleFavorite(ctx context.Context, jobPostID string) (*domain.FavoriteToggle, error) {
	var out domain.FavoriteToggle
	if err := c.api.Post(ctx, "/me/favorites/"+jobPostID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Scouts ---

// ListScouts lists scout offers the member has received.
func (c *MeClient) ListScouts(ctx context.Context) (*domain.ScoutList, error) {
	var out domain.ScoutList
	if err := c.api.Get(ctx, "/me/scouts", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RespondToScout accepts or declines a received scout offer.
func (c *MeClient) RespondToScout(ctx context.Context, scoutID string, status domain.ScoutStatus) (*domain.Scout, error) {
	var out domain.Scout
	body := map[string]string{"status": string(status)}
	if err := c.api.Patch(ctx, fmt.Sprintf("/me/scouts/%s", scoutID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
