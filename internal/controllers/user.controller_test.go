package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"blogify/internal/controllers"
	"blogify/internal/mocks"
	"blogify/internal/models"
	"blogify/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserRouter() (*gin.Engine, *controllers.UserController, *mocks.MockUserRepository) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	repo := new(mocks.MockUserRepository)
	controller := controllers.NewUserController(repo)
	return router, controller, repo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"username": "john",
				"email":    "john@example.com",
				"password": "password123",
			},
			setupMocks: func(repo *mocks.MockUserRepository) {
				repo.On("ExistsByUsername", "john").Return(false, nil)
				repo.On("ExistsByEmail", "john@example.com").Return(false, nil)
				repo.On("Create", mock.MatchedBy(func(u *models.User) bool {
					// The stored credential must never be the raw password.
					return u.Username == "john" && u.Password != "password123"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "User registered successfully",
		},
		{
			name: "username already taken",
			requestBody: map[string]interface{}{
				"username": "john",
				"email":    "fresh@example.com",
				"password": "password123",
			},
			setupMocks: func(repo *mocks.MockUserRepository) {
				repo.On("ExistsByUsername", "john").Return(true, nil)
				repo.On("ExistsByEmail", "fresh@example.com").Return(false, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Username or email already taken",
		},
		{
			name: "email already taken",
			requestBody: map[string]interface{}{
				"username": "fresh",
				"email":    "john@example.com",
				"password": "password123",
			},
			setupMocks: func(repo *mocks.MockUserRepository) {
				repo.On("ExistsByUsername", "fresh").Return(false, nil)
				repo.On("ExistsByEmail", "john@example.com").Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Username or email already taken",
		},
		{
			name: "insert loses the race after a clean pre-check",
			requestBody: map[string]interface{}{
				"username": "john",
				"email":    "john@example.com",
				"password": "password123",
			},
			setupMocks: func(repo *mocks.MockUserRepository) {
				repo.On("ExistsByUsername", "john").Return(false, nil)
				repo.On("ExistsByEmail", "john@example.com").Return(false, nil)
				repo.On("Create", mock.AnythingOfType("*models.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Username or email already taken",
		},
		{
			name: "password too short",
			requestBody: map[string]interface{}{
				"username": "john",
				"email":    "john@example.com",
				"password": "short",
			},
			setupMocks:     func(repo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "malformed email",
			requestBody: map[string]interface{}{
				"username": "john",
				"email":    "not-an-email",
				"password": "password123",
			},
			setupMocks:     func(repo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, controller, repo := setupUserRouter()
			tt.setupMocks(repo)
			router.POST("/users/register", controller.Register)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])
			repo.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	t.Run("successful login issues both tokens", func(t *testing.T) {
		router, controller, repo := setupUserRouter()
		repo.On("FindByUsernameOrEmail", "john").Return(&models.User{
			ID:       1,
			Username: "john",
			Password: hashPassword(t, "password123"),
		}, nil)
		router.POST("/users/login", controller.Login)

		body, _ := json.Marshal(map[string]interface{}{
			"username_or_email": "john",
			"password":          "password123",
		})
		req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.TokenResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.AccessToken)
		assert.NotEmpty(t, response.RefreshToken)
		assert.Equal(t, "bearer", response.TokenType)

		subject, err := utils.ParseToken(response.AccessToken, utils.TokenTypeAccess)
		assert.NoError(t, err)
		assert.Equal(t, "john", subject)
	})

	t.Run("login by email", func(t *testing.T) {
		router, controller, repo := setupUserRouter()
		repo.On("FindByUsernameOrEmail", "john@example.com").Return(&models.User{
			ID:       1,
			Username: "john",
			Email:    "john@example.com",
			Password: hashPassword(t, "password123"),
		}, nil)
		router.POST("/users/login", controller.Login)

		body, _ := json.Marshal(map[string]interface{}{
			"username_or_email": "john@example.com",
			"password":          "password123",
		})
		req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		router, controller, repo := setupUserRouter()
		repo.On("FindByUsernameOrEmail", "john").Return(&models.User{
			ID:       1,
			Username: "john",
			Password: hashPassword(t, "password123"),
		}, nil)
		router.POST("/users/login", controller.Login)

		body, _ := json.Marshal(map[string]interface{}{
			"username_or_email": "john",
			"password":          "wrong",
		})
		req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		router, controller, repo := setupUserRouter()
		repo.On("FindByUsernameOrEmail", "ghost").Return(nil, gorm.ErrRecordNotFound)
		router.POST("/users/login", controller.Login)

		body, _ := json.Marshal(map[string]interface{}{
			"username_or_email": "ghost",
			"password":          "password123",
		})
		req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("soft-deleted account with valid credentials", func(t *testing.T) {
		router, controller, repo := setupUserRouter()
		repo.On("FindByUsernameOrEmail", "john").Return(&models.User{
			ID:        1,
			Username:  "john",
			Password:  hashPassword(t, "password123"),
			IsDeleted: true,
		}, nil)
		router.POST("/users/login", controller.Login)

		body, _ := json.Marshal(map[string]interface{}{
			"username_or_email": "john",
			"password":          "password123",
		})
		req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Inactive user", response["message"])
	})
}

func TestRefresh(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	t.Run("valid refresh token", func(t *testing.T) {
		router, controller, repo := setupUserRouter()
		repo.On("FindByUsernameOrEmail", "john").Return(&models.User{ID: 1, Username: "john"}, nil)
		router.POST("/users/refresh", controller.Refresh)

		refreshToken, err := utils.GenerateRefreshToken("john")
		assert.NoError(t, err)

		body, _ := json.Marshal(map[string]interface{}{"refresh_token": refreshToken})
		req := httptest.NewRequest(http.MethodPost, "/users/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.TokenResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.AccessToken)
		assert.Empty(t, response.RefreshToken)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		router, controller, _ := setupUserRouter()
		router.POST("/users/refresh", controller.Refresh)

		accessToken, err := utils.GenerateAccessToken("john")
		assert.NoError(t, err)

		body, _ := json.Marshal(map[string]interface{}{"refresh_token": accessToken})
		req := httptest.NewRequest(http.MethodPost, "/users/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		router, controller, _ := setupUserRouter()
		router.POST("/users/refresh", controller.Refresh)

		body, _ := json.Marshal(map[string]interface{}{"refresh_token": "not-a-token"})
		req := httptest.NewRequest(http.MethodPost, "/users/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetCurrentUser(t *testing.T) {
	t.Run("resolved identity is echoed", func(t *testing.T) {
		router, controller, _ := setupUserRouter()
		router.GET("/users/me", authAs(&models.User{ID: 1, Username: "john"}), controller.GetCurrentUser)

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "john", data["username"])
		// The hashed credential must never serialize.
		_, leaked := data["hashed_password"]
		assert.False(t, leaked)
	})

	t.Run("no identity in context", func(t *testing.T) {
		router, controller, _ := setupUserRouter()
		router.GET("/users/me", controller.GetCurrentUser)

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
