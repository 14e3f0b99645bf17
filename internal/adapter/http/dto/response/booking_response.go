package response

import (
	"time"

	"nanny_booking/internal/domain/entities"
)

type BookingResponse struct {
	BookingID      string    `json:"booking_id"`
	ClientID       string    `json:"client_id"`
	ProviderID     string    `json:"provider_id"`
	Status         string    `json:"status"`
	DurationType   string    `json:"duration_type"`
	BookingSubType string    `json:"booking_sub_type,omitempty"`
	TotalAmount    float64   `json:"total_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		BookingID:      b.ID,
		ClientID:       b.ClientID,
		ProviderID:     b.ProviderID,
		Status:         b.Status,
		DurationType:   string(b.DurationType),
		BookingSubType: string(b.BookingSubType),
		TotalAmount:    b.TotalAmount,
		CreatedAt:      b.CreatedAt,
	}
}
