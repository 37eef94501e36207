package application

import (
	"net/http"
	"net/url"

	"github.com/bnema/labdesk/internal/domain"
)

type ListTechniquesArgs struct {
	Search *string `json:"search,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type TechniqueInput struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DurationDays int    `json:"duration_days"`
	Active       bool   `json:"active"`
}

func registerTechniques(r *Registry) {
	Register(r, Route[ListTechniquesArgs, []domain.Technique]{
		Name:   "list_techniques",
		Method: http.MethodGet,
		Path:   "/tecnicas",
		Query: func(a ListTechniquesArgs) url.Values {
			return newQuery().Add("search", a.Search).AddBool("active", a.Active).Values()
		},
		Unwrap:  true,
		Message: "techniques loaded",
	})
	Register(r, Route[IDArgs, domain.Technique]{
		Name:    "get_technique",
		Method:  http.MethodGet,
		Path:    "/tecnicas",
		Params:  byID,
		Unwrap:  true,
		Message: "technique loaded",
	})
	Register(r, Route[TechniqueInput, domain.Technique]{
		Name:    "create_technique",
		Method:  http.MethodPost,
		Path:    "/tecnicas",
		Body:    asBody[TechniqueInput],
		Unwrap:  true,
		Message: "technique created",
	})
	Register(r, Route[UpdateArgs[TechniqueInput], domain.Technique]{
		Name:    "update_technique",
		Method:  http.MethodPut,
		Path:    "/tecnicas",
		Params:  updateID[TechniqueInput],
		Body:    updateBody[TechniqueInput],
		Unwrap:  true,
		Message: "technique updated",
	})
	Register(r, Route[IDArgs, domain.Empty]{
		Name:    "delete_technique",
		Method:  http.MethodDelete,
		Path:    "/tecnicas",
		Params:  byID,
		Message: "technique deleted",
	})
}
