package service

import (
	"context"

	"moviehub/internal/models"

	"github.com/stretchr/testify/mock"
)

// testify mocks for the repository interfaces used by the services

type mockMovieRepo struct {
	mock.Mock
}

func (m *mockMovieRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	args := m.Called(ctx, page, pageSize)
	var list []models.Movie
	if v := args.Get(0); v != nil {
		list = v.([]models.Movie)
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	var movie *models.Movie
	if v := args.Get(0); v != nil {
		movie = v.(*models.Movie)
	}
	return movie, args.Error(1)
}

func (m *mockMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *mockMovieRepo) Update(ctx context.Context, id int64, movie *models.Movie) error {
	return m.Called(ctx, id, movie).Error(0)
}

func (m *mockMovieRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMovieRepo) Search(ctx context.Context, query, ordering string) ([]models.Movie, error) {
	args := m.Called(ctx, query, ordering)
	var list []models.Movie
	if v := args.Get(0); v != nil {
		list = v.([]models.Movie)
	}
	return list, args.Error(1)
}

type mockPlatformRepo struct {
	mock.Mock
}

func (m *mockPlatformRepo) GetAll(ctx context.Context) ([]models.Platform, error) {
	args := m.Called(ctx)
	var list []models.Platform
	if v := args.Get(0); v != nil {
		list = v.([]models.Platform)
	}
	return list, args.Error(1)
}

func (m *mockPlatformRepo) GetByID(ctx context.Context, id int64) (*models.Platform, error) {
	args := m.Called(ctx, id)
	var p *models.Platform
	if v := args.Get(0); v != nil {
		p = v.(*models.Platform)
	}
	return p, args.Error(1)
}

func (m *mockPlatformRepo) Create(ctx context.Context, p *models.Platform) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPlatformRepo) Update(ctx context.Context, id int64, p *models.Platform) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *mockPlatformRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPlatformRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) CreateWithAggregate(ctx context.Context, review *models.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) UpdateWithAggregate(ctx context.Context, review *models.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) DeleteWithAggregate(ctx context.Context, reviewID int64) error {
	return m.Called(ctx, reviewID).Error(0)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	var review *models.Review
	if v := args.Get(0); v != nil {
		review = v.(*models.Review)
	}
	return review, args.Error(1)
}

func (m *mockReviewRepo) GetByMovie(ctx context.Context, movieID int64, username string, page, pageSize int) ([]models.Review, int64, error) {
	args := m.Called(ctx, movieID, username, page, pageSize)
	var list []models.Review
	if v := args.Get(0); v != nil {
		list = v.([]models.Review)
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockReviewRepo) GetByUsername(ctx context.Context, username string) ([]models.Review, error) {
	args := m.Called(ctx, username)
	var list []models.Review
	if v := args.Get(0); v != nil {
		list = v.([]models.Review)
	}
	return list, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	var user *models.User
	if v := args.Get(0); v != nil {
		user = v.(*models.User)
	}
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	var user *models.User
	if v := args.Get(0); v != nil {
		user = v.(*models.User)
	}
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	var user *models.User
	if v := args.Get(0); v != nil {
		user = v.(*models.User)
	}
	return user, args.Error(1)
}

func (m *mockUserRepo) TouchLastLogin(id string) error {
	return m.Called(id).Error(0)
}

type mockRefreshTokenRepo struct {
	mock.Mock
}

func (m *mockRefreshTokenRepo) Create(refreshToken *models.RefreshToken) error {
	return m.Called(refreshToken).Error(0)
}

func (m *mockRefreshTokenRepo) FindByToken(tokenString string) (*models.RefreshToken, error) {
	args := m.Called(tokenString)
	var token *models.RefreshToken
	if v := args.Get(0); v != nil {
		token = v.(*models.RefreshToken)
	}
	return token, args.Error(1)
}

func (m *mockRefreshTokenRepo) Revoke(tokenID string) error {
	return m.Called(tokenID).Error(0)
}

func (m *mockRefreshTokenRepo) RevokeAllForUser(userID string) error {
	return m.Called(userID).Error(0)
}

func (m *mockRefreshTokenRepo) Delete(tokenID string) error {
	return m.Called(tokenID).Error(0)
}
