package dto

import "time"

// CreateOrderRequest describes the new-order payload.
type CreateOrderRequest struct {
	Client       string `json:"client"`
	Manufacturer string `json:"manufacturer"`
	Quantity     int    `json:"quantity"`
}

// EditOrderRequest carries sparse field overrides; absent fields stay as is.
type EditOrderRequest struct {
	Client       *string `json:"client"`
	Manufacturer *string `json:"manufacturer"`
	Product      *string `json:"product"`
	Quantity     *int    `json:"quantity"`
}

// StatusUpdateRequest selects an explicit pipeline stage.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// TimelineEntryResponse is one recorded status transition.
type TimelineEntryResponse struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	ID           string                  `json:"id"`
	Client       string                  `json:"client"`
	Manufacturer string                  `json:"manufacturer"`
	Product      string                  `json:"product"`
	Quantity     int                     `json:"quantity"`
	Status       string                  `json:"status"`
	Date         string                  `json:"date"`
	Timeline     []TimelineEntryResponse `json:"timeline"`
}
