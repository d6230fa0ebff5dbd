package middleware

import (
	"net/http"
	"strings"

	"dishly/internal/auth"

	"github.com/gin-gonic/gin"
)

// OptionalAuth resolves the caller to a profile when a valid bearer token
// is sent, and otherwise to the X-Device-ID header. A token that is sent
// but invalid is rejected rather than downgraded to the device id.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if deviceID := strings.TrimSpace(c.GetHeader(DeviceIDHeader)); deviceID != "" {
			c.Set("deviceID", deviceID)
			c.Set("userID", deviceID)
		}

		token, ok, problem := bearerToken(c)
		if !ok {
			c.Next()
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

// RequireIdentity aborts requests that OptionalAuth could not attribute to
// anyone.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userID") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "sign in or send " + DeviceIDHeader,
			})
			return
		}
		c.Next()
	}
}
