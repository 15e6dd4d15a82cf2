package dto

import "time"

// ChallanSelection is the challan working selection, used both for draft
// updates and for generation requests.
type ChallanSelection struct {
	Type     string         `json:"type"`
	OrderIDs []string       `json:"order_ids"`
	Photos   map[string]int `json:"photos,omitempty"`
}

// ChallanResponse describes one entry of the challan log.
type ChallanResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	OrderIDs    []string  `json:"order_ids"`
	GeneratedAt time.Time `json:"generated_at"`
}
