package mocks

import (
	"blogify/internal/models"
	"blogify/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(identifier string) (*models.User, error) {
	args := m.Called(identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

// Shared MockCategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(isActive *bool, offset, limit int) ([]models.Category, int64, error) {
	args := m.Called(isActive, offset, limit)
	return args.Get(0).([]models.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) Update(id uint, data map[string]interface{}) (*models.Category, error) {
	args := m.Called(id, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Deactivate(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

// Shared MockArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByIDWithRelations(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindAll(filter repository.ArticleFilter, offset, limit int) ([]models.Article, int64, error) {
	args := m.Called(filter, offset, limit)
	return args.Get(0).([]models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) FindAllWithRelations(filter repository.ArticleFilter, offset, limit int) ([]models.Article, int64, error) {
	args := m.Called(filter, offset, limit)
	return args.Get(0).([]models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) Update(id uint, data map[string]interface{}) (*models.Article, error) {
	args := m.Called(id, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Delete(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) CategoryExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) AuthorExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// Shared MockBlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(blog *models.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}

func (m *MockBlogRepository) FindByID(id uint) (*models.Blog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindByTitle(title string) (*models.Blog, error) {
	args := m.Called(title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindAll(offset, limit int) ([]models.Blog, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.Blog), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) Update(id uint, data map[string]interface{}) (*models.Blog, error) {
	args := m.Called(id, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) Delete(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// Shared MockCommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.BlogComment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(id uint) (*models.BlogComment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogComment), args.Error(1)
}

func (m *MockCommentRepository) FindByBlog(blogID uint, offset, limit int) ([]models.BlogComment, int64, error) {
	args := m.Called(blogID, offset, limit)
	return args.Get(0).([]models.BlogComment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) FindReplies(parentID uint) ([]models.BlogComment, error) {
	args := m.Called(parentID)
	return args.Get(0).([]models.BlogComment), args.Error(1)
}

func (m *MockCommentRepository) Update(id uint, content string) (*models.BlogComment, error) {
	args := m.Called(id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogComment), args.Error(1)
}

func (m *MockCommentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockReactionRepository
type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) ListTypes() ([]models.ReactionType, error) {
	args := m.Called()
	return args.Get(0).([]models.ReactionType), args.Error(1)
}

func (m *MockReactionRepository) FindTypeByID(id uint) (*models.ReactionType, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReactionType), args.Error(1)
}

func (m *MockReactionRepository) SetBlogReaction(blogID, userID, typeID uint) (*models.BlogReaction, error) {
	args := m.Called(blogID, userID, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogReaction), args.Error(1)
}

func (m *MockReactionRepository) RemoveBlogReaction(blogID, userID uint) (bool, error) {
	args := m.Called(blogID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReactionRepository) CountBlogReactions(blogID uint) ([]models.ReactionCount, error) {
	args := m.Called(blogID)
	return args.Get(0).([]models.ReactionCount), args.Error(1)
}

func (m *MockReactionRepository) SetCommentReaction(commentID, userID, typeID uint) (*models.CommentReaction, error) {
	args := m.Called(commentID, userID, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentReaction), args.Error(1)
}

func (m *MockReactionRepository) RemoveCommentReaction(commentID, userID uint) (bool, error) {
	args := m.Called(commentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReactionRepository) CountCommentReactions(commentID uint) ([]models.ReactionCount, error) {
	args := m.Called(commentID)
	return args.Get(0).([]models.ReactionCount), args.Error(1)
}

// Shared MockBlogViewRepository
type MockBlogViewRepository struct {
	mock.Mock
}

func (m *MockBlogViewRepository) Record(view *models.BlogView) error {
	args := m.Called(view)
	return args.Error(0)
}

func (m *MockBlogViewRepository) CountByBlog(blogID uint) (int64, error) {
	args := m.Called(blogID)
	return args.Get(0).(int64), args.Error(1)
}
