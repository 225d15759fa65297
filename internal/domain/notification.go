package domain

import (
	"time"

	"github.com/google/uuid"
)

const NotificationResumeDownloaded = "resume_downloaded"

// Notification is an activity record shown to the user in the app shell.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
