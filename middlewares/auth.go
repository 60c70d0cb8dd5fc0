package middlewares

import (
	"net/http"
	"strings"

	"brainscript/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// UserIDKey holds the caller's primitive.ObjectID in the gin context
	UserIDKey = "userID"
	// SessionCookie carries the session JWT for browser clients
	SessionCookie = "session"
)

// AuthMiddleware verifies the session JWT and sets the user id in context.
// The token comes from a Bearer header or, failing that, the session cookie.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = cookie
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := utils.ParseJWTToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentUserID returns the id set by AuthMiddleware
func CurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}
