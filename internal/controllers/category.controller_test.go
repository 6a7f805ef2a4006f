package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogify/internal/controllers"
	"blogify/internal/mocks"
	"blogify/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupCategoryRouter() (*gin.Engine, *controllers.CategoryController, *mocks.MockCategoryRepository) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	repo := new(mocks.MockCategoryRepository)
	controller := controllers.NewCategoryController(repo)
	return router, controller, repo
}

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockCategoryRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful creation",
			requestBody: map[string]interface{}{"name": "Tech"},
			setupMocks: func(repo *mocks.MockCategoryRepository) {
				repo.On("FindByName", "Tech").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.AnythingOfType("*models.Category")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Category created successfully",
		},
		{
			name:        "duplicate name",
			requestBody: map[string]interface{}{"name": "Tech"},
			setupMocks: func(repo *mocks.MockCategoryRepository) {
				repo.On("FindByName", "Tech").Return(&models.Category{ID: 1, Name: "Tech"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Category with this name already exists",
		},
		{
			name:        "late constraint violation",
			requestBody: map[string]interface{}{"name": "Tech"},
			setupMocks: func(repo *mocks.MockCategoryRepository) {
				repo.On("FindByName", "Tech").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.AnythingOfType("*models.Category")).Return(gorm.ErrDuplicatedKey)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Category with this name already exists",
		},
		{
			name:           "missing name",
			requestBody:    map[string]interface{}{"description": "no name"},
			setupMocks:     func(repo *mocks.MockCategoryRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, controller, repo := setupCategoryRouter()
			tt.setupMocks(repo)
			router.POST("/categories", controller.CreateCategory)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(body))
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

func TestGetCategories(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMocks     func(*mocks.MockCategoryRepository)
		expectedStatus int
		expectedTotal  float64
	}{
		{
			name: "default pagination",
			url:  "/categories",
			setupMocks: func(repo *mocks.MockCategoryRepository) {
				categories := []models.Category{{ID: 1, Name: "Tech"}, {ID: 2, Name: "Life"}}
				repo.On("FindAll", (*bool)(nil), 0, 10).Return(categories, int64(2), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  2,
		},
		{
			name: "explicit page and size",
			url:  "/categories?page=3&size=5",
			setupMocks: func(repo *mocks.MockCategoryRepository) {
				repo.On("FindAll", (*bool)(nil), 10, 5).Return([]models.Category{}, int64(2), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  2,
		},
		{
			name:           "page below one",
			url:            "/categories?page=0",
			setupMocks:     func(repo *mocks.MockCategoryRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "size above limit",
			url:            "/categories?size=101",
			setupMocks:     func(repo *mocks.MockCategoryRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-numeric page",
			url:            "/categories?page=abc",
			setupMocks:     func(repo *mocks.MockCategoryRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, controller, repo := setupCategoryRouter()
			tt.setupMocks(repo)
			router.GET("/categories", controller.GetCategories)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedTotal, response["total"])
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestGetCategoryByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, controller, repo := setupCategoryRouter()
		repo.On("FindByID", uint(7)).Return(&models.Category{ID: 7, Name: "Tech"}, nil)
		router.GET("/categories/:id", controller.GetCategoryByID)

		req := httptest.NewRequest(http.MethodGet, "/categories/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		router, controller, repo := setupCategoryRouter()
		repo.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)
		router.GET("/categories/:id", controller.GetCategoryByID)

		req := httptest.NewRequest(http.MethodGet, "/categories/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		router, controller, _ := setupCategoryRouter()
		router.GET("/categories/:id", controller.GetCategoryByID)

		req := httptest.NewRequest(http.MethodGet, "/categories/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("soft delete succeeds", func(t *testing.T) {
		router, controller, repo := setupCategoryRouter()
		repo.On("Delete", uint(3)).Return(true, nil)
		router.DELETE("/categories/:id", controller.DeleteCategory)

		req := httptest.NewRequest(http.MethodDelete, "/categories/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("already gone", func(t *testing.T) {
		router, controller, repo := setupCategoryRouter()
		repo.On("Delete", uint(3)).Return(false, nil)
		router.DELETE("/categories/:id", controller.DeleteCategory)

		req := httptest.NewRequest(http.MethodDelete, "/categories/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		router, controller, repo := setupCategoryRouter()
		existing := &models.Category{ID: 5, Name: "Tech", IsActive: true}
		repo.On("FindByID", uint(5)).Return(existing, nil)
		repo.On("Update", uint(5), map[string]interface{}{"is_active": false}).
			Return(&models.Category{ID: 5, Name: "Tech", IsActive: false}, nil)
		router.PUT("/categories/:id", controller.UpdateCategory)

		body, _ := json.Marshal(map[string]interface{}{"is_active": false})
		req := httptest.NewRequest(http.MethodPut, "/categories/5", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("rename to taken name", func(t *testing.T) {
		router, controller, repo := setupCategoryRouter()
		repo.On("FindByID", uint(5)).Return(&models.Category{ID: 5, Name: "Tech"}, nil)
		repo.On("FindByName", "Life").Return(&models.Category{ID: 6, Name: "Life"}, nil)
		router.PUT("/categories/:id", controller.UpdateCategory)

		body, _ := json.Marshal(map[string]interface{}{"name": "Life"})
		req := httptest.NewRequest(http.MethodPut, "/categories/5", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertExpectations(t)
	})
}
