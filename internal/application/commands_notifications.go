package application

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bnema/labdesk/internal/domain"
)

type ListMyNotificationsArgs struct {
	UnreadOnly *bool `json:"unread_only,omitempty"`
}

func registerNotifications(r *Registry) {
	Register(r, Route[ListMyNotificationsArgs, []domain.Notification]{
		Name:   "list_my_notifications",
		Method: http.MethodGet,
		Path:   "/notificacoes/usuario",
		Query: func(a ListMyNotificationsArgs) url.Values {
			return newQuery().AddBool("unread", a.UnreadOnly).Values()
		},
		AsCurrentUser: true,
		Unwrap:        true,
		Message:       "notifications loaded",
	})
	Register(r, Route[IDArgs, domain.Empty]{
		Name:   "mark_notification_read",
		Method: http.MethodPatch,
		Path:   "/notificacoes",
		Params: func(a IDArgs) []string {
			return []string{idParam(a.ID), "lida"}
		},
		Message: "notification marked as read",
	})
	RegisterFunc(r, "current_notification", currentNotification)
}

// currentNotification reads the last notification pushed over the
// notification socket. It performs no I/O.
func currentNotification(_ context.Context, deps Deps, _ domain.Empty) domain.Outcome[domain.Notification] {
	notification, ok := deps.Session.CurrentNotification()
	if !ok {
		return domain.Succeed[domain.Notification]("no notification received", nil)
	}
	return domain.Succeed("notification loaded", &notification)
}
