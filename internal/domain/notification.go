package domain

import (
	"errors"
	"strings"
	"time"
)

type NotificationID int64

type Notification struct {
	ID        NotificationID `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Kind      string         `json:"kind"`
	UserID    UserID         `json:"user_id,omitempty"`
	Read      Flag           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
}

func (n Notification) Validate() error {
	if n.ID <= 0 {
		return errors.New("notification id is required")
	}
	if strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.Message) == "" {
		return errors.New("notification has neither title nor message")
	}
	return nil
}
