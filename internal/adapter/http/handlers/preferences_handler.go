package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "nanny_booking/internal/adapter/http/dto/request"
	response "nanny_booking/internal/adapter/http/dto/response"
	"nanny_booking/internal/adapter/http/middleware"
	"nanny_booking/internal/usecase"
)

// PreferencesHandler exposes the booking wizard document of the caller's session.
type PreferencesHandler struct {
	usecase usecase.IPreferenceSessionUseCase
}

func NewPreferencesHandler(uc usecase.IPreferenceSessionUseCase) *PreferencesHandler {
	return &PreferencesHandler{usecase: uc}
}

// GetPreferences opens the session on first use and returns its document.
//
// @Summary  Get the booking preferences of the session
// @Tags     preferences
// @Produce  json
// @Param    X-Session-ID  header  string  true   "Wizard session id"
// @Param    X-Client-ID   header  string  false  "Signed-in client id"
// @Param    X-User-Role   header  string  false  "Signed-in user role"
// @Success  200  {object}  response.SessionResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /preferences [get]
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	snap, err := h.usecase.Open(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// UpdatePreferences merges a partial update into the session document.
//
// @Summary  Update booking preferences
// @Tags     preferences
// @Accept   json
// @Produce  json
// @Param    X-Session-ID  header  string                            true  "Wizard session id"
// @Param    body          body    request.UpdatePreferencesRequest  true  "Fields to change"
// @Success  200  {object}  response.SessionResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /preferences [patch]
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	var payload request.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		appErr := errInvalidPayload.WithDetails(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	snap, err := h.usecase.ApplyUpdate(c.Request.Context(), middleware.IdentityFrom(c), patch)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// ResetPreferences discards the document and starts over from defaults.
//
// @Summary  Reset booking preferences
// @Tags     preferences
// @Param    X-Session-ID  header  string  true  "Wizard session id"
// @Success  204
// @Router   /preferences [delete]
func (h *PreferencesHandler) ResetPreferences(c *gin.Context) {
	if err := h.usecase.Reset(c.Request.Context(), middleware.IdentityFrom(c)); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectProvider
//
// @Summary  Select a nanny candidate
// @Tags     preferences
// @Accept   json
// @Produce  json
// @Param    X-Session-ID  header  string                   true  "Wizard session id"
// @Param    body          body    request.ProviderRequest  true  "Candidate"
// @Success  200  {object}  response.SessionResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /preferences/provider [put]
func (h *PreferencesHandler) SelectProvider(c *gin.Context) {
	var payload request.ProviderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProvider.HTTPStatus, errInvalidProvider.ToHTTPError())
		return
	}

	snap, err := h.usecase.SelectProvider(c.Request.Context(), middleware.IdentityFrom(c), payload.ToProvider())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// ClearProvider
//
// @Summary  Clear the selected nanny candidate
// @Tags     preferences
// @Produce  json
// @Param    X-Session-ID  header  string  true  "Wizard session id"
// @Success  200  {object}  response.SessionResponse
// @Router   /preferences/provider [delete]
func (h *PreferencesHandler) ClearProvider(c *gin.Context) {
	snap, err := h.usecase.ClearProvider(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// CloseSession releases the session and cancels its pending profile write.
// The recovery cache is kept so the wizard can resume later.
//
// @Summary  Close the wizard session
// @Tags     preferences
// @Param    X-Session-ID  header  string  true  "Wizard session id"
// @Success  204
// @Router   /preferences/session [delete]
func (h *PreferencesHandler) CloseSession(c *gin.Context) {
	if err := h.usecase.Close(c.Request.Context(), middleware.IdentityFrom(c)); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
