package application

import (
	"net/http"
	"net/url"

	"github.com/bnema/labdesk/internal/domain"
)

// remoteUser is the user as the remote service encodes it.
type remoteUser struct {
	ID               domain.UserID `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Role             domain.Role   `json:"role"`
	Active           domain.Flag   `json:"active"`
	DarkMode         domain.Flag   `json:"dark_mode"`
	ProfilePhotoPath string        `json:"profile_photo_path"`
	Language         string        `json:"language"`
}

func (u remoteUser) Validate() error {
	return u.toDomain().Validate()
}

func (u remoteUser) toDomain() domain.User {
	return domain.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Active:       bool(u.Active),
		DarkMode:     bool(u.DarkMode),
		ProfilePhoto: u.ProfilePhotoPath,
		Language:     u.Language,
	}
}

type ListUsersArgs struct {
	Search *string `json:"search,omitempty"`
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
	Page   *int64  `json:"page,omitempty"`
}

type UserInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	Password string      `json:"password,omitempty"`
	Active   bool        `json:"active"`
	Language string      `json:"language,omitempty"`
}

var (
	decodeUser  = mapped(remoteUser.toDomain)
	decodeUsers = mapped(mapSlice(remoteUser.toDomain))
)

func registerUsers(r *Registry) {
	Register(r, Route[ListUsersArgs, []domain.User]{
		Name:   "list_users",
		Method: http.MethodGet,
		Path:   "/usuarios",
		Query: func(a ListUsersArgs) url.Values {
			return newQuery().Add("search", a.Search).Add("role", a.Role).AddBool("active", a.Active).AddInt("page", a.Page).Values()
		},
		Unwrap:  true,
		Message: "users loaded",
		Decode:  decodeUsers,
	})
	Register(r, Route[IDArgs, domain.User]{
		Name:    "get_user",
		Method:  http.MethodGet,
		Path:    "/usuarios",
		Params:  byID,
		Unwrap:  true,
		Message: "user loaded",
		Decode:  decodeUser,
	})
	Register(r, Route[UserInput, domain.User]{
		Name:    "create_user",
		Method:  http.MethodPost,
		Path:    "/usuarios",
		Body:    asBody[UserInput],
		Unwrap:  true,
		Message: "user created",
		Decode:  decodeUser,
	})
	Register(r, Route[UpdateArgs[UserInput], domain.User]{
		Name:    "update_user",
		Method:  http.MethodPut,
		Path:    "/usuarios",
		Params:  updateID[UserInput],
		Body:    updateBody[UserInput],
		Unwrap:  true,
		Message: "user updated",
		Decode:  decodeUser,
	})
	Register(r, Route[IDArgs, domain.Empty]{
		Name:    "delete_user",
		Method:  http.MethodDelete,
		Path:    "/usuarios",
		Params:  byID,
		Message: "user deleted",
	})
}
