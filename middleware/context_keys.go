package middleware

import "github.com/gin-gonic/gin"

// Keys set on the gin context by the auth middlewares.
const (
	CtxSessionID    = "sessionID"
	CtxSessionEmail = "sessionEmail"
	CtxIsAdmin      = "isAdmin"
	CtxRequestID    = "request_id"

	// CtxActivityResourceID lets a handler name the resource it touched when
	// the route has no :id param.
	CtxActivityResourceID = "activityResourceID"
)

// SessionFromContext returns the authenticated subject and email.
func SessionFromContext(c *gin.Context) (id, email string, ok bool) {
	id = c.GetString(CtxSessionID)
	email = c.GetString(CtxSessionEmail)
	return id, email, id != "" && email != ""
}
