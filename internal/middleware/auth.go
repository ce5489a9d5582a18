package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DeniseL168/FinanceApp/internal/token"
	"github.com/DeniseL168/FinanceApp/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey is the gin context key holding the authenticated user id.
	UserIDKey = "userID"
	// TokenKey is the gin context key holding the raw bearer token, so
	// logout can revoke the credential that authenticated the request.
	TokenKey = "authToken"
)

// TokenValidator checks a bearer token and returns the user id it was
// issued for. Injected explicitly so the revocation lookup is a plain
// dependency, not a registered global callback.
type TokenValidator interface {
	Validate(ctx context.Context, tokenStr string) (string, error)
}

// Auth rejects requests without a valid, unrevoked bearer credential
// and puts the caller's user id into the request context.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "Missing Authorization header")
			c.Abort()
			return
		}

		userID, err := validator.Validate(c.Request.Context(), tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				util.Error(c, http.StatusUnauthorized, "Token has expired")
			case errors.Is(err, token.ErrRevoked):
				util.Error(c, http.StatusUnauthorized, "Token has been revoked")
			case errors.Is(err, token.ErrMalformed):
				util.Error(c, http.StatusUnauthorized, "Invalid token")
			default:
				util.Error(c, http.StatusInternalServerError, "Token validation failed")
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(TokenKey, tokenStr)
		c.Next()
	}
}

// UserID returns the authenticated user id placed by Auth, or "" if
// the middleware did not run.
func UserID(c *gin.Context) string {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
