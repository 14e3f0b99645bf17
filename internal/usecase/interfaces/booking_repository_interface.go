package interfaces

import (
	"context"

	"nanny_booking/internal/domain/entities"
)

// IBookingRepository reads booking records written by the booking service.
type IBookingRepository interface {
	GetByID(ctx context.Context, id string) (entities.Booking, error)
}
