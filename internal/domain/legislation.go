package domain

import (
	"errors"
	"strings"
	"time"
)

type LegislationID int64

type Legislation struct {
	ID          LegislationID `json:"id"`
	Title       string        `json:"title"`
	Number      string        `json:"number"`
	Agency      string        `json:"agency,omitempty"`
	Summary     string        `json:"summary,omitempty"`
	URL         string        `json:"url,omitempty"`
	Active      Flag          `json:"active"`
	PublishedAt time.Time     `json:"published_at"`
}

func (l Legislation) Validate() error {
	if l.ID <= 0 {
		return errors.New("legislation id is required")
	}
	if strings.TrimSpace(l.Title) == "" {
		return errors.New("legislation title is required")
	}
	return nil
}
