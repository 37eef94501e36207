package memory

import (
	"sync"
	"testing"

	"github.com/bnema/labdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreStartsEmpty(t *testing.T) {
	store := NewStore()

	_, ok := store.CurrentUser()
	assert.False(t, ok)
	_, ok = store.CurrentNotification()
	assert.False(t, ok)
	assert.False(t, store.UpdateUser(func(*domain.User) { t.Fatal("must not be called") }))
}

func TestStoreLastSaveWins(t *testing.T) {
	store := NewStore()
	store.SaveUser(domain.User{ID: 1, Email: "a@lab.test"})
	store.SaveUser(domain.User{ID: 2, Email: "b@lab.test"})

	user, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, domain.UserID(2), user.ID)
	assert.Equal(t, "b@lab.test", user.Email)
}

func TestStoreReturnsCopies(t *testing.T) {
	store := NewStore()
	store.SaveUser(domain.User{ID: 1, Email: "a@lab.test", Language: "pt-BR"})

	user, _ := store.CurrentUser()
	user.Language = "en"

	again, _ := store.CurrentUser()
	assert.Equal(t, "pt-BR", again.Language)
}

func TestStoreUpdateUser(t *testing.T) {
	store := NewStore()
	store.SaveUser(domain.User{ID: 1, Email: "a@lab.test"})

	require.True(t, store.UpdateUser(func(user *domain.User) { user.DarkMode = true }))

	user, _ := store.CurrentUser()
	assert.True(t, user.DarkMode)
	assert.Equal(t, "a@lab.test", user.Email)
}

func TestStoreClearDropsUserAndNotification(t *testing.T) {
	store := NewStore()
	store.SaveUser(domain.User{ID: 1, Email: "a@lab.test"})
	store.SaveNotification(domain.Notification{ID: 9, Title: "Sample ready"})

	notification, ok := store.CurrentNotification()
	require.True(t, ok)
	assert.Equal(t, "Sample ready", notification.Title)

	store.Clear()

	_, ok = store.CurrentUser()
	assert.False(t, ok)
	_, ok = store.CurrentNotification()
	assert.False(t, ok)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			store.SaveUser(domain.User{ID: domain.UserID(id), Email: "u@lab.test"})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.CurrentUser()
			store.UpdateUser(func(user *domain.User) { user.DarkMode = !user.DarkMode })
		}()
	}
	wg.Wait()

	user, ok := store.CurrentUser()
	require.True(t, ok)
	assert.NotZero(t, user.ID)
}
