package routes

import (
	"nanny_booking/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
)

func addBookingRoutes(rg *gin.RouterGroup, h *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", h.SubmitBooking)
		bookings.GET("/:booking_id", h.GetBooking)
	}
}
