package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type FinancialAuditID int64

type AuditStatus string

const (
	AuditStatusOpen   AuditStatus = "open"
	AuditStatusClosed AuditStatus = "closed"
)

func (s *AuditStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("audit status must be a string: %w", err)
	}

	switch status := AuditStatus(strings.ToLower(strings.TrimSpace(raw))); status {
	case AuditStatusOpen, AuditStatusClosed:
		*s = status
		return nil
	default:
		return fmt.Errorf("unsupported audit status %q", raw)
	}
}

type FinancialAudit struct {
	ID            FinancialAuditID `json:"id"`
	Year          int              `json:"year"`
	Period        string           `json:"period"`
	Status        AuditStatus      `json:"status"`
	Auditor       string           `json:"auditor,omitempty"`
	TotalRevenue  float64          `json:"total_revenue"`
	TotalExpenses float64          `json:"total_expenses"`
	Notes         string           `json:"notes,omitempty"`
	ClosedAt      *time.Time       `json:"closed_at,omitempty"`
}

func (a FinancialAudit) Balance() float64 {
	return a.TotalRevenue - a.TotalExpenses
}

func (a FinancialAudit) Validate() error {
	if a.ID <= 0 {
		return errors.New("financial audit id is required")
	}
	if a.Year <= 0 {
		return errors.New("financial audit year is required")
	}
	return nil
}
