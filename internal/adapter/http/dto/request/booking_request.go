package request

import "strings"

// SubmitBookingRequest is the body of POST /v1/bookings.
type SubmitBookingRequest struct {
	ProviderID string `json:"provider_id"`
}

func (r SubmitBookingRequest) ResolveProviderID() string {
	return strings.TrimSpace(r.ProviderID)
}
