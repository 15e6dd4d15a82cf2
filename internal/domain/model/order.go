package model

import (
	"strings"
	"time"
)

// OrderStatus names a stage of the fulfillment pipeline.
type OrderStatus string

const (
	StatusOrderReceived       OrderStatus = "Order Received"
	StatusRetrievedFromMaker  OrderStatus = "Retrieved from Manufacturer"
	StatusAtPhotographyStudio OrderStatus = "At Photography Studio"
	StatusCollectedFromStudio OrderStatus = "Collected from Studio"
	StatusReturnedToMaker     OrderStatus = "Returned to Manufacturer"
	StatusPrePrinting         OrderStatus = "Pre Printing"
	StatusPrinting            OrderStatus = "Printing"
	StatusPostPrinting        OrderStatus = "Post Printing"
	StatusPhotosDelivered     OrderStatus = "Photos Delivered"
)

// statusPipeline is the full fulfillment sequence. Order matters:
// Advance moves exactly one position forward and the last stage is terminal.
var statusPipeline = []OrderStatus{
	StatusOrderReceived,
	StatusRetrievedFromMaker,
	StatusAtPhotographyStudio,
	StatusCollectedFromStudio,
	StatusReturnedToMaker,
	StatusPrePrinting,
	StatusPrinting,
	StatusPostPrinting,
	StatusPhotosDelivered,
}

// StatusPipeline returns the fulfillment stages in pipeline order.
func StatusPipeline() []OrderStatus {
	stages := make([]OrderStatus, len(statusPipeline))
	copy(stages, statusPipeline)
	return stages
}

// StageIndex returns the zero-based position of the status within the
// pipeline, or -1 when the status is unknown.
func (s OrderStatus) StageIndex() int {
	for i, stage := range statusPipeline {
		if stage == s {
			return i
		}
	}
	return -1
}

// Valid reports whether the status belongs to the pipeline.
func (s OrderStatus) Valid() bool {
	return s.StageIndex() >= 0
}

// Terminal reports whether the status is the last pipeline stage.
func (s OrderStatus) Terminal() bool {
	return s == statusPipeline[len(statusPipeline)-1]
}

// Next returns the following pipeline stage. The second value is false
// when the status is terminal or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	idx := s.StageIndex()
	if idx < 0 || idx == len(statusPipeline)-1 {
		return "", false
	}
	return statusPipeline[idx+1], true
}

// InitialStatus returns the stage assigned to freshly created orders.
func InitialStatus() OrderStatus {
	return statusPipeline[0]
}

// TimelineEntry records a single status transition.
type TimelineEntry struct {
	Status OrderStatus `json:"status"`
	At     time.Time   `json:"at"`
}

// Order is a print job tracked through the fulfillment pipeline.
// Timeline is append-only going forward; reverting pops its tail. The last
// timeline entry always carries the order's current status.
type Order struct {
	ID           string
	Client       string
	Manufacturer string
	Product      string
	Quantity     int
	Status       OrderStatus
	Date         time.Time
	Timeline     []TimelineEntry
}

// DateLayout is the calendar-date form used for order dates in API
// payloads and search matching.
const DateLayout = "2006-01-02"

// Clone returns a deep copy so callers cannot mutate the working set's
// timeline through a shared slice.
func (o Order) Clone() Order {
	clone := o
	clone.Timeline = make([]TimelineEntry, len(o.Timeline))
	copy(clone.Timeline, o.Timeline)
	return clone
}

// Matches reports whether the order matches a search term: case-insensitive
// substring over id, client, manufacturer, and the calendar date.
func (o Order) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{o.ID, o.Client, o.Manufacturer, o.Date.Format(DateLayout)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
