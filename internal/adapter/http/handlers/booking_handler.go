package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "nanny_booking/internal/adapter/http/dto/request"
	response "nanny_booking/internal/adapter/http/dto/response"
	"nanny_booking/internal/adapter/http/middleware"
	"nanny_booking/internal/usecase"
)

// BookingHandler submits finished wizard sessions to the booking service.
type BookingHandler struct {
	usecase usecase.IBookingSubmissionUseCase
}

func NewBookingHandler(uc usecase.IBookingSubmissionUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// SubmitBooking
//
// @Summary  Create a booking from the session preferences
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    X-Session-ID  header  string                        true  "Wizard session id"
// @Param    X-Client-ID   header  string                        true  "Signed-in client id"
// @Param    body          body    request.SubmitBookingRequest  true  "Chosen provider"
// @Success  201  {object}  response.BookingResponse
// @Failure  409  {object}  pkg.HTTPError
// @Failure  422  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Router   /bookings [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var payload request.SubmitBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Submit(c.Request.Context(), middleware.IdentityFrom(c), payload.ResolveProviderID())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

// GetBooking
//
// @Summary  Get a booking record
// @Tags     bookings
// @Produce  json
// @Param    X-Session-ID  header  string  true  "Wizard session id"
// @Param    booking_id    path    string  true  "Booking id"
// @Success  200  {object}  response.BookingResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /bookings/{booking_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.usecase.GetBooking(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}
