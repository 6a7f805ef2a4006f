package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"blogify/internal/middleware"
	"blogify/internal/mocks"
	"blogify/internal/models"
	"blogify/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupGuardedRouter(userRepo *mocks.MockUserRepository, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", guard, func(c *gin.Context) {
		if user, ok := middleware.CurrentUser(c); ok {
			c.JSON(http.StatusOK, gin.H{"username": user.Username})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": nil})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	t.Run("valid token resolves the user", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByUsernameOrEmail", "john").Return(&models.User{ID: 1, Username: "john"}, nil)
		router := setupGuardedRouter(userRepo, middleware.AuthMiddleware(userRepo))

		token, err := utils.GenerateAccessToken("john")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "john")
	})

	t.Run("missing header", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		router := setupGuardedRouter(userRepo, middleware.AuthMiddleware(userRepo))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		router := setupGuardedRouter(userRepo, middleware.AuthMiddleware(userRepo))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token on an access endpoint", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		router := setupGuardedRouter(userRepo, middleware.AuthMiddleware(userRepo))

		token, err := utils.GenerateRefreshToken("john")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unresolvable subject", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByUsernameOrEmail", "ghost").Return(nil, gorm.ErrRecordNotFound)
		router := setupGuardedRouter(userRepo, middleware.AuthMiddleware(userRepo))

		token, err := utils.GenerateAccessToken("ghost")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("soft-deleted account is inactive, not unauthorized", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByUsernameOrEmail", "john").Return(&models.User{
			ID: 1, Username: "john", IsDeleted: true,
		}, nil)
		router := setupGuardedRouter(userRepo, middleware.AuthMiddleware(userRepo))

		token, err := utils.GenerateAccessToken("john")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Inactive user")
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	t.Run("no token stays anonymous", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		router := setupGuardedRouter(userRepo, middleware.OptionalAuthMiddleware(userRepo))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "null")
	})

	t.Run("bad token stays anonymous", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		router := setupGuardedRouter(userRepo, middleware.OptionalAuthMiddleware(userRepo))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "null")
	})

	t.Run("valid token resolves the user", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByUsernameOrEmail", "john").Return(&models.User{ID: 1, Username: "john"}, nil)
		router := setupGuardedRouter(userRepo, middleware.OptionalAuthMiddleware(userRepo))

		token, err := utils.GenerateAccessToken("john")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "john")
	})
}

func TestRequireSuperuser(t *testing.T) {
	runWith := func(user *models.User) *httptest.ResponseRecorder {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/admin", func(c *gin.Context) {
			if user != nil {
				c.Set(middleware.ContextUserKey, user)
			}
		}, middleware.RequireSuperuser(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, runWith(&models.User{ID: 1, IsSuperuser: true}).Code)
	assert.Equal(t, http.StatusForbidden, runWith(&models.User{ID: 1}).Code)
	assert.Equal(t, http.StatusForbidden, runWith(nil).Code)
}
