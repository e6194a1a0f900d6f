package middleware

import (
	"net/http"
	"strings"

	userRepo "vedicjivan/database/repository/user"
	"vedicjivan/models"
	"vedicjivan/utils"

	"github.com/gin-gonic/gin"
)

// contextUserKey is where the authenticated user is stored on the gin context.
const contextUserKey = "currentUser"

// JWTAuthMiddleware validates the Bearer access token, loads the user and
// stores it on the context for downstream handlers.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractSubjectFromToken(tokenString, utils.TokenTypeAccess)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		usr, err := users.GetByID(c.Request.Context(), userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		c.Set(contextUserKey, usr)
		c.Next()
	}
}

// RequireAdmin gates a route group to users carrying the admin role. It
// must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		usr := CurrentUser(c)
		if usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !usr.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by JWTAuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(contextUserKey)
	if !exists {
		return nil
	}
	usr, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return usr
}
