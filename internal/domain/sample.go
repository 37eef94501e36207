package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type SampleID int64

type SampleStatus string

const (
	SampleStatusReceived   SampleStatus = "received"
	SampleStatusInAnalysis SampleStatus = "in_analysis"
	SampleStatusCompleted  SampleStatus = "completed"
	SampleStatusCancelled  SampleStatus = "cancelled"
)

func ParseSampleStatus(raw string) (SampleStatus, error) {
	status := SampleStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case SampleStatusReceived, SampleStatusInAnalysis, SampleStatusCompleted, SampleStatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unsupported sample status %q", raw)
	}
}

func (s *SampleStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("sample status must be a string: %w", err)
	}

	status, err := ParseSampleStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

type Sample struct {
	ID          SampleID     `json:"id"`
	Code        string       `json:"code"`
	Description string       `json:"description"`
	Status      SampleStatus `json:"status"`
	TechniqueID TechniqueID  `json:"technique_id,omitempty"`
	ClientName  string       `json:"client_name,omitempty"`
	Urgent      Flag         `json:"urgent"`
	ReceivedAt  time.Time    `json:"received_at"`
}

func (s Sample) Validate() error {
	if s.ID <= 0 {
		return errors.New("sample id is required")
	}
	if strings.TrimSpace(s.Code) == "" {
		return errors.New("sample code is required")
	}
	if s.Status == "" {
		return errors.New("sample status is required")
	}
	return nil
}
