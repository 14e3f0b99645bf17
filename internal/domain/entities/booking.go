package entities

import (
	"encoding/json"
	"time"
)

// Booking is the record created by the external booking service.
//
// TotalAmount comes from the server-side financial calculation and is the only
// authoritative amount; preview breakdowns never replace it.
type Booking struct {
	ID             string         `json:"id"`
	ClientID       string         `json:"client_id"`
	ProviderID     string         `json:"provider_id"`
	Status         string         `json:"status"`
	DurationType   DurationType   `json:"duration_type"`
	BookingSubType BookingSubType `json:"booking_sub_type,omitempty"`
	TotalAmount    float64        `json:"total_amount"`
	CreatedAt      time.Time      `json:"created_at"`

	// Raw keeps the record exactly as echoed by the booking service.
	Raw json.RawMessage `json:"raw,omitempty"`
}

// BookingRequest is the normalized payload handed to the booking service.
type BookingRequest struct {
	Preferences UserPreferences `json:"preferences"`
	ProviderID  string          `json:"provider_id"`
	ClientID    string          `json:"client_id"`

	// IdempotencyKey is sent as a header, not in the body.
	IdempotencyKey string `json:"-"`
}
