package application

import (
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/labdesk/internal/domain"
)

type ListInventoryArgs struct {
	Category *string `json:"category,omitempty"`
	LowStock *bool   `json:"low_stock,omitempty"`
	Search   *string `json:"search,omitempty"`
}

type InventoryItemInput struct {
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Quantity        float64    `json:"quantity"`
	MinimumQuantity float64    `json:"minimum_quantity"`
	Unit            string     `json:"unit"`
	Location        string     `json:"location,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

type AdjustStockArgs struct {
	ID     int64   `json:"id"`
	Delta  float64 `json:"delta"`
	Reason string  `json:"reason,omitempty"`
}

func registerInventory(r *Registry) {
	Register(r, Route[ListInventoryArgs, []domain.InventoryItem]{
		Name:   "list_inventory_items",
		Method: http.MethodGet,
		Path:   "/inventarios",
		Query: func(a ListInventoryArgs) url.Values {
			return newQuery().Add("category", a.Category).AddBool("low_stock", a.LowStock).Add("search", a.Search).Values()
		},
		Unwrap:  true,
		Message: "inventory loaded",
	})
	Register(r, Route[IDArgs, domain.InventoryItem]{
		Name:    "get_inventory_item",
		Method:  http.MethodGet,
		Path:    "/inventarios",
		Params:  byID,
		Unwrap:  true,
		Message: "inventory item loaded",
	})
	Register(r, Route[InventoryItemInput, domain.InventoryItem]{
		Name:    "create_inventory_item",
		Method:  http.MethodPost,
		Path:    "/inventarios",
		Body:    asBody[InventoryItemInput],
		Unwrap:  true,
		Message: "inventory item created",
	})
	Register(r, Route[UpdateArgs[InventoryItemInput], domain.InventoryItem]{
		Name:    "update_inventory_item",
		Method:  http.MethodPut,
		Path:    "/inventarios",
		Params:  updateID[InventoryItemInput],
		Body:    updateBody[InventoryItemInput],
		Unwrap:  true,
		Message: "inventory item updated",
	})
	Register(r, Route[AdjustStockArgs, domain.InventoryItem]{
		Name:   "adjust_inventory_stock",
		Method: http.MethodPatch,
		Path:   "/inventarios",
		Params: func(a AdjustStockArgs) []string {
			return []string{idParam(a.ID), "estoque"}
		},
		Body: func(a AdjustStockArgs) any {
			return struct {
				Delta  float64 `json:"delta"`
				Reason string  `json:"reason,omitempty"`
			}{Delta: a.Delta, Reason: a.Reason}
		},
		Unwrap:  true,
		Message: "stock adjusted",
	})
	Register(r, Route[IDArgs, domain.Empty]{
		Name:    "delete_inventory_item",
		Method:  http.MethodDelete,
		Path:    "/inventarios",
		Params:  byID,
		Message: "inventory item deleted",
	})
}
