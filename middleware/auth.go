package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errNoToken = errors.New("no token provided")

// bearerToken reads the Supabase access token from the Authorization header,
// falling back to the sb-access-token cookie.
func bearerToken(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", errors.New("invalid token format")
		}
		return parts[1], nil
	}
	if token, err := c.Cookie("sb-access-token"); err == nil && token != "" {
		return token, nil
	}
	return "", errNoToken
}

// authenticate verifies the session and stores it on the context. It
// writes the 401 itself and reports false when the request must stop.
func authenticate(c *gin.Context, verifier services.SessionVerifier, tag string) (*services.SessionClaims, bool) {
	token, err := bearerToken(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - "+err.Error()))
		return nil, false
	}

	claims, err := verifier.VerifySession(c.Request.Context(), token)
	if err != nil {
		config.Log.Info(tag+" invalid token", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
		return nil, false
	}

	c.Set(CtxSessionID, claims.Subject)
	c.Set(CtxSessionEmail, claims.Email)
	return claims, true
}

// AuthMiddleware requires any signed-in customer.
func AuthMiddleware(verifier services.SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, verifier, "[auth]"); !ok {
			return
		}
		c.Next()
	}
}

// AdminAuthMiddleware requires a session whose email is on the admin
// allow-list. The comparison is exact, including case.
func AdminAuthMiddleware(verifier services.SessionVerifier, policy config.AdminPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, verifier, "[admin.auth]")
		if !ok {
			return
		}

		if !policy.IsAdmin(claims.Email) {
			config.Log.Warn("[admin.auth] forbidden",
				zap.String("email", claims.Email),
				zap.String("path", c.FullPath()))
			c.Set(CtxIsAdmin, false)
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			return
		}

		c.Set(CtxIsAdmin, true)
		c.Next()
	}
}
