package domain

import (
	"errors"
	"strings"
	"time"
)

type InventoryItemID int64

type InventoryItem struct {
	ID              InventoryItemID `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Quantity        float64         `json:"quantity"`
	MinimumQuantity float64         `json:"minimum_quantity"`
	Unit            string          `json:"unit"`
	Location        string          `json:"location,omitempty"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`
}

// LowStock reports whether the quantity reached the configured minimum.
func (i InventoryItem) LowStock() bool {
	return i.MinimumQuantity > 0 && i.Quantity <= i.MinimumQuantity
}

func (i InventoryItem) Validate() error {
	if i.ID <= 0 {
		return errors.New("inventory item id is required")
	}
	if strings.TrimSpace(i.Name) == "" {
		return errors.New("inventory item name is required")
	}
	return nil
}
