package routes

import (
	"nanny_booking/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing = "/pricing"
)

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/preview", h.Preview)
		pricing.POST("/preview/provider", h.PreviewForProvider)
	}
}
