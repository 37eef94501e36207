package memory

import (
	"sync"

	"github.com/bnema/labdesk/internal/domain"
	"github.com/bnema/labdesk/internal/ports"
)

// Store keeps the logged-in user and the last received notification in
// process memory. Nothing is persisted across restarts.
type Store struct {
	mu           sync.RWMutex
	user         *domain.User
	notification *domain.Notification
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SaveUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
}

func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// UpdateUser applies fn to the stored user under the write lock. It reports
// false, without calling fn, when nobody is logged in.
func (s *Store) UpdateUser(apply func(*domain.User)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return false
	}

	updated := *s.user
	apply(&updated)
	s.user = &updated
	return true
}

func (s *Store) SaveNotification(notification domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notification = &notification
}

func (s *Store) CurrentNotification() (domain.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.notification == nil {
		return domain.Notification{}, false
	}
	return *s.notification, true
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.notification = nil
}
