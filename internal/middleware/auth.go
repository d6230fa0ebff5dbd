package middleware

import (
	"net/http"
	"strings"

	"dishly/internal/auth"

	"github.com/gin-gonic/gin"
)

const DeviceIDHeader = "X-Device-ID"

// bearerToken returns the token of an "Authorization: Bearer" header,
// ok=false when the header is absent and an error message when malformed.
func bearerToken(c *gin.Context) (token string, ok bool, problem string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false, ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", true, "invalid authorization format, use 'Bearer <token>'"
	}
	return parts[1], true, ""
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok, problem := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
			return
		}

		profileID, email, err := auth.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			return
		}

		c.Set("userID", profileID)
		c.Set("userEmail", email)
		c.Set("authenticated", true)
		c.Next()
	}
}
