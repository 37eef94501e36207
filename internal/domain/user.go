package domain

import (
	"errors"
	"strings"
)

type UserID int64

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleAnalyst    Role = "analyst"
	RoleTechnician Role = "technician"
)

type User struct {
	ID           UserID `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Active       bool   `json:"active"`
	DarkMode     bool   `json:"dark_mode"`
	ProfilePhoto string `json:"profile_photo"`
	Language     string `json:"language"`
	// Token authenticates follow-up requests; it never crosses the UI boundary.
	Token string `json:"-"`
}

func (u User) Validate() error {
	if u.ID <= 0 {
		return errors.New("user id is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return errors.New("user email is required")
	}
	return nil
}

// Settings holds the preferences echoed back by a settings update. A nil
// field was not returned and must not overwrite the cached value.
type Settings struct {
	DarkMode     *bool
	ProfilePhoto *string
	Language     *string
}

func (s Settings) ApplyTo(u *User) {
	if u == nil {
		return
	}
	if s.DarkMode != nil {
		u.DarkMode = *s.DarkMode
	}
	if s.ProfilePhoto != nil {
		u.ProfilePhoto = *s.ProfilePhoto
	}
	if s.Language != nil {
		u.Language = *s.Language
	}
}
