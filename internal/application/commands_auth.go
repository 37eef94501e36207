package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bnema/labdesk/internal/domain"
)

type LoginArgs struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Token string     `json:"token"`
	User  remoteUser `json:"user"`
}

func (p loginPayload) Validate() error {
	if strings.TrimSpace(p.Token) == "" {
		return errors.New("login response has no token")
	}
	return p.User.Validate()
}

func (p loginPayload) toDomain() domain.User {
	user := p.User.toDomain()
	user.Token = p.Token
	return user
}

// SettingsArgs carries the preferences to change. Omitted fields are left
// alone by the server.
type SettingsArgs struct {
	DarkMode         *bool   `json:"dark_mode,omitempty"`
	ProfilePhotoPath *string `json:"profile_photo_path,omitempty"`
	Language         *string `json:"language,omitempty"`
}

// settingsEcho is the flat settings response. Fields the server did not
// return stay nil.
type settingsEcho struct {
	DarkMode         *domain.Flag `json:"dark_mode"`
	ProfilePhotoPath *string      `json:"profile_photo_path"`
	Language         *string      `json:"language"`
}

func (e settingsEcho) toDomain() domain.Settings {
	settings := domain.Settings{ProfilePhoto: e.ProfilePhotoPath, Language: e.Language}
	if e.DarkMode != nil {
		darkMode := bool(*e.DarkMode)
		settings.DarkMode = &darkMode
	}
	return settings
}

type ChangePasswordArgs struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

var (
	loginRoute = Route[LoginArgs, domain.User]{
		Name:    "login",
		Method:  http.MethodPost,
		Path:    "/auth/login",
		Body:    asBody[LoginArgs],
		Unwrap:  true,
		Message: "logged in",
		Decode:  mapped(loginPayload.toDomain),
		Then: func(_ context.Context, deps Deps, _ LoginArgs, user domain.User) error {
			deps.Session.SaveUser(user)
			deps.log().WithField("user_id", user.ID).Info("user logged in")
			return nil
		},
	}

	logoutRoute = Route[domain.Empty, domain.Empty]{
		Name:    "logout",
		Method:  http.MethodPost,
		Path:    "/auth/logout",
		Message: "logged out",
	}

	settingsRoute = Route[SettingsArgs, domain.Settings]{
		Name:          "update_settings",
		Method:        http.MethodPut,
		Path:          "/usuarios/configuracoes",
		Body:          asBody[SettingsArgs],
		AsCurrentUser: true,
		Decode:        mapped(settingsEcho.toDomain),
	}
)

func registerAuth(r *Registry) {
	Register(r, loginRoute)
	RegisterFunc(r, logoutRoute.Name, logout)
	Register(r, Route[domain.Empty, domain.User]{
		Name:          "current_user",
		Method:        http.MethodGet,
		Path:          "/usuarios",
		AsCurrentUser: true,
		Unwrap:        true,
		Message:       "user loaded",
		Decode:        decodeUser,
		Then:          refreshSessionUser,
	})
	RegisterFunc(r, settingsRoute.Name, updateSettings)
	Register(r, Route[ChangePasswordArgs, domain.Empty]{
		Name:          "change_password",
		Method:        http.MethodPut,
		Path:          "/usuarios/senha",
		Body:          asBody[ChangePasswordArgs],
		AsCurrentUser: true,
		Message:       "password changed",
	})
}

// logout clears the local session whatever the server answered; the
// outcome still reports the remote result.
func logout(ctx context.Context, deps Deps, args domain.Empty) domain.Outcome[domain.Empty] {
	outcome := Invoke(ctx, deps, logoutRoute, args)
	deps.Session.Clear()
	deps.log().WithField("remote_status", outcome.Status()).Info("session cleared")
	return outcome
}

// updateSettings merges only the fields the server echoed back into the
// cached user and returns the merged user.
func updateSettings(ctx context.Context, deps Deps, args SettingsArgs) domain.Outcome[domain.User] {
	settings, err := Execute(ctx, deps, settingsRoute, args)
	if err != nil {
		return domain.Fail[domain.User](err)
	}

	if !deps.Session.UpdateUser(settings.ApplyTo) {
		return domain.Fail[domain.User](domain.ErrNoSession)
	}

	user, ok := deps.Session.CurrentUser()
	if !ok {
		return domain.Fail[domain.User](domain.ErrNoSession)
	}
	return domain.Succeed("settings updated", &user)
}

func refreshSessionUser(_ context.Context, deps Deps, _ domain.Empty, fresh domain.User) error {
	updated := deps.Session.UpdateUser(func(user *domain.User) {
		token := user.Token
		*user = fresh
		user.Token = token
	})
	if !updated {
		return domain.ErrNoSession
	}
	return nil
}
