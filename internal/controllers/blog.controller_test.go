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

func setupBlogRouter() (*gin.Engine, *controllers.BlogController, *mocks.MockBlogRepository, *mocks.MockBlogViewRepository) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	repo := new(mocks.MockBlogRepository)
	views := new(mocks.MockBlogViewRepository)
	controller := controllers.NewBlogController(repo, views)
	return router, controller, repo, views
}

func TestCreateBlog(t *testing.T) {
	owner := &models.User{ID: 3, Username: "owner"}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockBlogRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful creation",
			requestBody: map[string]interface{}{"title": "First post", "content": "hello"},
			setupMocks: func(repo *mocks.MockBlogRepository) {
				repo.On("FindByTitle", "First post").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.MatchedBy(func(b *models.Blog) bool {
					return b.CreatedByUserID == 3
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Blog created successfully",
		},
		{
			name:        "duplicate title",
			requestBody: map[string]interface{}{"title": "First post", "content": "hello"},
			setupMocks: func(repo *mocks.MockBlogRepository) {
				repo.On("FindByTitle", "First post").Return(&models.Blog{ID: 1, Title: "First post"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Blog with this title already exists",
		},
		{
			name:        "title too short",
			requestBody: map[string]interface{}{"title": "x", "content": "hello"},
			setupMocks:  func(repo *mocks.MockBlogRepository) {},

			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, controller, repo, _ := setupBlogRouter()
			tt.setupMocks(repo)
			router.POST("/blogs/create", authAs(owner), controller.CreateBlog)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/blogs/create", bytes.NewReader(body))
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

func TestGetBlogByIDRecordsView(t *testing.T) {
	t.Run("authenticated read stamps the viewer", func(t *testing.T) {
		router, controller, repo, views := setupBlogRouter()
		viewer := &models.User{ID: 5}
		repo.On("FindByID", uint(2)).Return(&models.Blog{ID: 2, Title: "Post"}, nil)
		views.On("Record", mock.MatchedBy(func(v *models.BlogView) bool {
			return v.BlogID == 2 && v.UserID != nil && *v.UserID == 5
		})).Return(nil)
		router.GET("/blogs/get/:id", authAs(viewer), controller.GetBlogByID)

		req := httptest.NewRequest(http.MethodGet, "/blogs/get/2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		views.AssertExpectations(t)
	})

	t.Run("failed view write does not break the read", func(t *testing.T) {
		router, controller, repo, views := setupBlogRouter()
		repo.On("FindByID", uint(2)).Return(&models.Blog{ID: 2, Title: "Post"}, nil)
		views.On("Record", mock.AnythingOfType("*models.BlogView")).Return(assert.AnError)
		router.GET("/blogs/get/:id", authAs(&models.User{ID: 5}), controller.GetBlogByID)

		req := httptest.NewRequest(http.MethodGet, "/blogs/get/2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("soft-deleted blog is absent", func(t *testing.T) {
		router, controller, repo, _ := setupBlogRouter()
		repo.On("FindByID", uint(2)).Return(nil, gorm.ErrRecordNotFound)
		router.GET("/blogs/get/:id", authAs(&models.User{ID: 5}), controller.GetBlogByID)

		req := httptest.NewRequest(http.MethodGet, "/blogs/get/2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteBlog(t *testing.T) {
	t.Run("owner soft-deletes", func(t *testing.T) {
		router, controller, repo, _ := setupBlogRouter()
		repo.On("FindByID", uint(4)).Return(&models.Blog{ID: 4, CreatedByUserID: 3}, nil)
		repo.On("Delete", uint(4)).Return(true, nil)
		router.DELETE("/blogs/delete/:id", authAs(&models.User{ID: 3}), controller.DeleteBlog)

		req := httptest.NewRequest(http.MethodDelete, "/blogs/delete/4", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		router, controller, repo, _ := setupBlogRouter()
		repo.On("FindByID", uint(4)).Return(&models.Blog{ID: 4, CreatedByUserID: 3}, nil)
		router.DELETE("/blogs/delete/:id", authAs(&models.User{ID: 8}), controller.DeleteBlog)

		req := httptest.NewRequest(http.MethodDelete, "/blogs/delete/4", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetBlogViews(t *testing.T) {
	router, controller, repo, views := setupBlogRouter()
	repo.On("FindByID", uint(4)).Return(&models.Blog{ID: 4}, nil)
	views.On("CountByBlog", uint(4)).Return(int64(12), nil)
	router.GET("/blogs/:id/views", controller.GetBlogViews)

	req := httptest.NewRequest(http.MethodGet, "/blogs/4/views", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["views"])
}
