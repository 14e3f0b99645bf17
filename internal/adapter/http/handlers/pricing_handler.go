package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "nanny_booking/internal/adapter/http/dto/request"
	response "nanny_booking/internal/adapter/http/dto/response"
	"nanny_booking/internal/adapter/http/middleware"
	"nanny_booking/internal/usecase"
)

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// Preview
//
// @Summary  Preview the price of the current preferences
// @Tags     pricing
// @Produce  json
// @Param    X-Session-ID  header  string  true  "Wizard session id"
// @Success  200  {object}  response.PricingResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /pricing/preview [get]
func (h *PricingHandler) Preview(c *gin.Context) {
	breakdown, err := h.usecase.Preview(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

// PreviewForProvider prices one candidate as a monthly arrangement. An empty
// body prices the session's selected provider.
//
// @Summary  Preview the monthly price for a provider
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    X-Session-ID  header  string                          true   "Wizard session id"
// @Param    body          body    request.ProviderPreviewRequest  false  "Candidate"
// @Success  200  {object}  response.PricingResponse
// @Failure  422  {object}  pkg.HTTPError
// @Router   /pricing/preview/provider [post]
func (h *PricingHandler) PreviewForProvider(c *gin.Context) {
	var payload request.ProviderPreviewRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	breakdown, err := h.usecase.PreviewForProvider(c.Request.Context(), middleware.IdentityFrom(c), payload.ToProvider())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}
