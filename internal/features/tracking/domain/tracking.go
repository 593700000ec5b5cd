package domain

import (
	"strings"
	"time"
)

// OrderPlaceholder is shown when a record carries no order number.
const OrderPlaceholder = "N/A"

// InvalidDate is shown when a timestamp cannot be parsed.
const InvalidDate = "Invalid Date"

// DisplayLayout formats timestamps like an en-US locale string.
const DisplayLayout = "1/2/2006, 3:04:05 PM"

// deliveredStatus is compared case-insensitively by the hide-delivered filter.
const deliveredStatus = "delivered"

// TrackingRecord is one shipment's status snapshot as returned by the worker.
type TrackingRecord struct {
	// TrackingNumber identifies the shipment and keys its row.
	TrackingNumber string `json:"tracking_number"`
	// OrderNumber is nil when the worker sends null or omits it.
	OrderNumber *string `json:"order_number"`
	// Status is a free-form label such as "In Transit" or "Delivered".
	Status string `json:"status"`
	// CreatedAt is the raw date-time text from the worker.
	CreatedAt string `json:"created_at"`
	// UpdatedAt is the raw date-time text from the worker.
	UpdatedAt string `json:"updated_at"`
}

// SearchResult is the body of GET /search.
type SearchResult struct {
	// Results keeps the worker's order.
	Results []TrackingRecord `json:"results"`
	// Count is informational only.
	Count int `json:"count"`
}

// IsDelivered reports whether the status equals "delivered", ignoring case.
func (r TrackingRecord) IsDelivered() bool {
	return strings.EqualFold(r.Status, deliveredStatus)
}

// OrderLabel returns the order number, or OrderPlaceholder when it is null or empty.
func (r TrackingRecord) OrderLabel() string {
	if r.OrderNumber == nil || *r.OrderNumber == "" {
		return OrderPlaceholder
	}
	return *r.OrderNumber
}

// zonedLayouts carry their own offset or, for date-only text, are UTC.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
}

// localLayouts have no zone and are read as wall-clock time in the display location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses worker date-time text. Date-times without a zone are
// taken to be in loc; date-only values are midnight UTC.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders raw in loc using DisplayLayout.
func FormatTimestamp(raw string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, ok := ParseTimestamp(raw, loc)
	if !ok {
		return InvalidDate
	}
	return t.In(loc).Format(DisplayLayout)
}

// Row is a record prepared for display.
type Row struct {
	TrackingNumber string `json:"tracking_number"`
	OrderNumber    string `json:"order_number"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// ToRow formats r for display in loc.
func (r TrackingRecord) ToRow(loc *time.Location) Row {
	return Row{
		TrackingNumber: r.TrackingNumber,
		OrderNumber:    r.OrderLabel(),
		Status:         r.Status,
		CreatedAt:      FormatTimestamp(r.CreatedAt, loc),
		UpdatedAt:      FormatTimestamp(r.UpdatedAt, loc),
	}
}
