package application

import (
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/labdesk/internal/domain"
)

type ListLegislationsArgs struct {
	Search *string `json:"search,omitempty"`
	Agency *string `json:"agency,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type LegislationInput struct {
	Title       string     `json:"title"`
	Number      string     `json:"number"`
	Agency      string     `json:"agency,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	URL         string     `json:"url,omitempty"`
	Active      bool       `json:"active"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

func registerLegislations(r *Registry) {
	Register(r, Route[ListLegislationsArgs, []domain.Legislation]{
		Name:   "list_legislations",
		Method: http.MethodGet,
		Path:   "/legislacoes",
		Query: func(a ListLegislationsArgs) url.Values {
			return newQuery().Add("search", a.Search).Add("agency", a.Agency).AddBool("active", a.Active).Values()
		},
		Unwrap:  true,
		Message: "legislations loaded",
	})
	Register(r, Route[IDArgs, domain.Legislation]{
		Name:    "get_legislation",
		Method:  http.MethodGet,
		Path:    "/legislacoes",
		Params:  byID,
		Unwrap:  true,
		Message: "legislation loaded",
	})
	Register(r, Route[LegislationInput, domain.Legislation]{
		Name:    "create_legislation",
		Method:  http.MethodPost,
		Path:    "/legislacoes",
		Body:    asBody[LegislationInput],
		Unwrap:  true,
		Message: "legislation created",
	})
	Register(r, Route[UpdateArgs[LegislationInput], domain.Legislation]{
		Name:    "update_legislation",
		Method:  http.MethodPut,
		Path:    "/legislacoes",
		Params:  updateID[LegislationInput],
		Body:    updateBody[LegislationInput],
		Unwrap:  true,
		Message: "legislation updated",
	})
	Register(r, Route[IDArgs, domain.Empty]{
		Name:    "delete_legislation",
		Method:  http.MethodDelete,
		Path:    "/legislacoes",
		Params:  byID,
		Message: "legislation deleted",
	})
}
