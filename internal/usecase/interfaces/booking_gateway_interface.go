package interfaces

import (
	"context"

	"nanny_booking/internal/domain/entities"
)

// IBookingGateway abstracts the external booking-creation service.
//
// The service computes the financial record; the returned booking carries the
// authoritative amount.
type IBookingGateway interface {
	CreateBooking(ctx context.Context, req entities.BookingRequest) (entities.Booking, error)
}
