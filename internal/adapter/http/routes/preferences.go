package routes

import (
	"nanny_booking/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPreferences = "/preferences"
)

func addPreferencesRoutes(rg *gin.RouterGroup, h *handlers.PreferencesHandler) {
	preferences := rg.Group(PathPreferences)
	{
		preferences.GET("", h.GetPreferences)
		preferences.PATCH("", h.UpdatePreferences)
		preferences.DELETE("", h.ResetPreferences)
		preferences.PUT("/provider", h.SelectProvider)
		preferences.DELETE("/provider", h.ClearProvider)
		preferences.DELETE("/session", h.CloseSession)
	}
}
