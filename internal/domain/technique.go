package domain

import (
	"errors"
	"strings"
)

type TechniqueID int64

type Technique struct {
	ID           TechniqueID `json:"id"`
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	DurationDays int         `json:"duration_days"`
	Active       Flag        `json:"active"`
}

func (t Technique) Validate() error {
	if t.ID <= 0 {
		return errors.New("technique id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("technique name is required")
	}
	return nil
}
