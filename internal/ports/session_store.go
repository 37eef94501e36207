package ports

import "github.com/bnema/labdesk/internal/domain"

// SessionStore holds the single active session of the desktop client.
// Implementations return copies so callers cannot mutate the cached values.
type SessionStore interface {
	SaveUser(user domain.User)
	CurrentUser() (domain.User, bool)
	UpdateUser(apply func(*domain.User)) bool
	SaveNotification(notification domain.Notification)
	CurrentNotification() (domain.Notification, bool)
	Clear()
}
