package application

import (
	"net/http"
	"net/url"

	"github.com/bnema/labdesk/internal/domain"
)

type ListFinancialAuditsArgs struct {
	Year   *int64  `json:"year,omitempty"`
	Status *string `json:"status,omitempty"`
}

type FinancialAuditInput struct {
	Year          int     `json:"year"`
	Period        string  `json:"period"`
	Auditor       string  `json:"auditor,omitempty"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	Notes         string  `json:"notes,omitempty"`
}

type CloseAuditArgs struct {
	ID    int64  `json:"id"`
	Notes string `json:"notes,omitempty"`
}

func registerFinancialAudits(r *Registry) {
	Register(r, Route[ListFinancialAuditsArgs, []domain.FinancialAudit]{
		Name:   "list_financial_audits",
		Method: http.MethodGet,
		Path:   "/auditorias-financeiras",
		Query: func(a ListFinancialAuditsArgs) url.Values {
			return newQuery().AddInt("year", a.Year).Add("status", a.Status).Values()
		},
		Unwrap:  true,
		Message: "financial audits loaded",
	})
	Register(r, Route[IDArgs, domain.FinancialAudit]{
		Name:    "get_financial_audit",
		Method:  http.MethodGet,
		Path:    "/auditorias-financeiras",
		Params:  byID,
		Unwrap:  true,
		Message: "financial audit loaded",
	})
	Register(r, Route[FinancialAuditInput, domain.FinancialAudit]{
		Name:    "create_financial_audit",
		Method:  http.MethodPost,
		Path:    "/auditorias-financeiras",
		Body:    asBody[FinancialAuditInput],
		Unwrap:  true,
		Message: "financial audit created",
	})
	Register(r, Route[UpdateArgs[FinancialAuditInput], domain.FinancialAudit]{
		Name:    "update_financial_audit",
		Method:  http.MethodPut,
		Path:    "/auditorias-financeiras",
		Params:  updateID[FinancialAuditInput],
		Body:    updateBody[FinancialAuditInput],
		Unwrap:  true,
		Message: "financial audit updated",
	})
	Register(r, Route[CloseAuditArgs, domain.FinancialAudit]{
		Name:   "close_financial_audit",
		Method: http.MethodPatch,
		Path:   "/auditorias-financeiras",
		Params: func(a CloseAuditArgs) []string {
			return []string{idParam(a.ID), "fechar"}
		},
		Body: func(a CloseAuditArgs) any {
			return map[string]string{"notes": a.Notes}
		},
		Unwrap:  true,
		Message: "financial audit closed",
	})
}
