package domain

import "time"

// NotificationItem is one notification in the member's inbox.
type NotificationItem struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Channel   string            `json:"channel"`
	Payload   map[string]string `json:"payload"`
	Status    string            `json:"status"`
	ReadAt    *time.Time        `json:"read_at"`
	CreatedAt time.Time         `json:"created_at"`
}

// NotificationList wraps notifications with the unread count.
type NotificationList struct {
	Items       []NotificationItem `json:"items"`
	UnreadCount int                `json:"unread_count"`
}

// Favorite is a bookmarked job post.
type Favorite struct {
	ID           string     `json:"id"`
	JobPostID    string     `json:"job_post_id"`
	JobTitle     string     `json:"job_title"`
	CompanyName  string     `json:"company_name"`
	LocationCode *string    `json:"location_code"`
	CloseAt      *time.Time `json:"close_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FavoriteList wraps favorites with a total count.
type FavoriteList struct {
	Items []Favorite `json:"items"`
	Total int        `json:"total"`
}

// FavoriteToggle is the result of toggling a bookmark.
type FavoriteToggle struct {
	Favorited bool `json:"favorited"`
}
