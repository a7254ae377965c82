package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ktsk/conduit/internal/auth"
)

const authScheme = "Token"

// RequireAuth rejects requests without a valid session token. On success it
// stores the user id and the raw token in the request context.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := tokenFromHeader(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("token", raw)
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through without an identity, but a
// credential that is present and invalid still fails the request. A silently
// ignored bad token would serve the viewer anonymous data they did not ask
// for.
func OptionalAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		raw, ok := tokenFromHeader(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("token", raw)
		c.Next()
	}
}

// tokenFromHeader extracts the credential from "Authorization: Token <value>".
func tokenFromHeader(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != authScheme {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing or invalid credentials"})
}
