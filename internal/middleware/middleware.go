package middleware

import (
	"net/http"
	"strings"

	"blogify/internal/models"
	"blogify/internal/repository"
	"blogify/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey holds the resolved *models.User for authenticated requests.
const ContextUserKey = "current_user"

// AuthMiddleware validates the bearer token and resolves it to a user row.
// Any verification failure is a single 401; a resolvable but soft-deleted
// account is rejected as inactive.
func AuthMiddleware(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authorization header is required",
				"error":   "Use format: Bearer {token}",
			})
			c.Abort()
			return
		}

		subject, err := utils.ParseToken(tokenString, utils.TokenTypeAccess)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
				"error":   "Could not validate credentials",
			})
			c.Abort()
			return
		}

		user, err := userRepo.FindByUsernameOrEmail(subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
				"error":   "Could not validate credentials",
			})
			c.Abort()
			return
		}

		if user.IsDeleted {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Inactive user",
				"error":   "This account has been deactivated",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves an identity when it can and stays silent
// when it cannot: no token, a bad token and an unresolvable subject all
// leave the request anonymous.
func OptionalAuthMiddleware(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		subject, err := utils.ParseToken(tokenString, utils.TokenTypeAccess)
		if err != nil {
			c.Next()
			return
		}

		user, err := userRepo.FindByUsernameOrEmail(subject)
		if err != nil || user.IsDeleted {
			c.Next()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireSuperuser must run after AuthMiddleware.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsSuperuser {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Not enough permissions",
				"error":   "Superuser privileges required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user resolved by AuthMiddleware or
// OptionalAuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}
