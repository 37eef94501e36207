package application

import (
	"net/http"
	"net/url"

	"github.com/bnema/labdesk/internal/domain"
)

type ListSamplesArgs struct {
	Status      *string `json:"status,omitempty"`
	TechniqueID *int64  `json:"technique_id,omitempty"`
	Search      *string `json:"search,omitempty"`
	Page        *int64  `json:"page,omitempty"`
}

type SampleInput struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	TechniqueID int64  `json:"technique_id"`
	ClientName  string `json:"client_name,omitempty"`
	Urgent      bool   `json:"urgent"`
}

type SampleStatusArgs struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func registerSamples(r *Registry) {
	Register(r, Route[ListSamplesArgs, []domain.Sample]{
		Name:   "list_samples",
		Method: http.MethodGet,
		Path:   "/amostras",
		Query: func(a ListSamplesArgs) url.Values {
			return newQuery().Add("status", a.Status).AddInt("technique_id", a.TechniqueID).Add("search", a.Search).AddInt("page", a.Page).Values()
		},
		Unwrap:  true,
		Message: "samples loaded",
	})
	Register(r, Route[IDArgs, domain.Sample]{
		Name:    "get_sample",
		Method:  http.MethodGet,
		Path:    "/amostras",
		Params:  byID,
		Unwrap:  true,
		Message: "sample loaded",
	})
	Register(r, Route[SampleInput, domain.Sample]{
		Name:    "create_sample",
		Method:  http.MethodPost,
		Path:    "/amostras",
		Body:    asBody[SampleInput],
		Unwrap:  true,
		Message: "sample created",
	})
	Register(r, Route[UpdateArgs[SampleInput], domain.Sample]{
		Name:    "update_sample",
		Method:  http.MethodPut,
		Path:    "/amostras",
		Params:  updateID[SampleInput],
		Body:    updateBody[SampleInput],
		Unwrap:  true,
		Message: "sample updated",
	})
	Register(r, Route[SampleStatusArgs, domain.Sample]{
		Name:   "update_sample_status",
		Method: http.MethodPatch,
		Path:   "/amostras",
		Params: func(a SampleStatusArgs) []string {
			return []string{idParam(a.ID), "status"}
		},
		Body: func(a SampleStatusArgs) any {
			return map[string]string{"status": a.Status}
		},
		Unwrap:  true,
		Message: "sample status updated",
	})
	Register(r, Route[IDArgs, domain.Empty]{
		Name:    "delete_sample",
		Method:  http.MethodDelete,
		Path:    "/amostras",
		Params:  byID,
		Message: "sample deleted",
	})
}
