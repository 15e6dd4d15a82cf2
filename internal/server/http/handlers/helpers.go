package handlers

import (
	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/server/http/dto"
)

func toOrderResponse(order model.Order) dto.OrderResponse {
	timeline := make([]dto.TimelineEntryResponse, 0, len(order.Timeline))
	for _, entry := range order.Timeline {
		timeline = append(timeline, dto.TimelineEntryResponse{Status: string(entry.Status), At: entry.At})
	}
	return dto.OrderResponse{
		ID:           order.ID,
		Client:       order.Client,
		Manufacturer: order.Manufacturer,
		Product:      order.Product,
		Quantity:     order.Quantity,
		Status:       string(order.Status),
		Date:         order.Date.Format(model.DateLayout),
		Timeline:     timeline,
	}
}

func toChallanResponse(challan model.Challan) dto.ChallanResponse {
	return dto.ChallanResponse{
		ID:          challan.ID,
		Type:        string(challan.Type),
		OrderIDs:    challan.OrderIDs,
		GeneratedAt: challan.GeneratedAt,
	}
}
