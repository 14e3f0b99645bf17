package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/pkg"
)

const (
	HeaderSessionID = "X-Session-ID"
	HeaderClientID  = "X-Client-ID"
	HeaderUserRole  = "X-User-Role"

	identityKey = "booking.identity"
)

var errMissingSession = pkg.NewDomainErrorSimple("MISSING_SESSION", "X-Session-ID header is required", http.StatusBadRequest)

// Identity reads the headers set by the upstream auth layer. Every booking
// route is scoped to a wizard session, so a request without one is rejected.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := entities.Identity{
			SessionID: strings.TrimSpace(c.GetHeader(HeaderSessionID)),
			ClientID:  strings.TrimSpace(c.GetHeader(HeaderClientID)),
			Role:      strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))),
		}
		if id.SessionID == "" {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by Identity. Handlers mounted
// without the middleware get a zero identity.
func IdentityFrom(c *gin.Context) entities.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(entities.Identity); ok {
			return id
		}
	}
	return entities.Identity{}
}
