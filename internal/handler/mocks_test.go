package handler

import (
	"context"

	"moviehub/internal/models"
	"moviehub/internal/shared"

	"github.com/stretchr/testify/mock"
)

type mockMovieService struct {
	mock.Mock
}

func (m *mockMovieService) GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	args := m.Called(ctx, page, pageSize)
	var list []models.Movie
	if v := args.Get(0); v != nil {
		list = v.([]models.Movie)
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	var movie *models.Movie
	if v := args.Get(0); v != nil {
		movie = v.(*models.Movie)
	}
	return movie, args.Error(1)
}

func (m *mockMovieService) Create(ctx context.Context, movie *models.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *mockMovieService) Update(ctx context.Context, id int64, movie *models.Movie) error {
	return m.Called(ctx, id, movie).Error(0)
}

func (m *mockMovieService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMovieService) Search(ctx context.Context, query, ordering string) ([]models.Movie, error) {
	args := m.Called(ctx, query, ordering)
	var list []models.Movie
	if v := args.Get(0); v != nil {
		list = v.([]models.Movie)
	}
	return list, args.Error(1)
}

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) CreateForMovie(ctx context.Context, userID string, movieID int64, reviewText string, rating int) (*models.Review, error) {
	args := m.Called(ctx, userID, movieID, reviewText, rating)
	var review *models.Review
	if v := args.Get(0); v != nil {
		review = v.(*models.Review)
	}
	return review, args.Error(1)
}

func (m *mockReviewService) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	var review *models.Review
	if v := args.Get(0); v != nil {
		review = v.(*models.Review)
	}
	return review, args.Error(1)
}

func (m *mockReviewService) GetByMovie(ctx context.Context, movieID int64, username string, page, pageSize int) ([]models.Review, int64, error) {
	args := m.Called(ctx, movieID, username, page, pageSize)
	var list []models.Review
	if v := args.Get(0); v != nil {
		list = v.([]models.Review)
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockReviewService) GetByUsername(ctx context.Context, username string) ([]models.Review, error) {
	args := m.Called(ctx, username)
	var list []models.Review
	if v := args.Get(0); v != nil {
		list = v.([]models.Review)
	}
	return list, args.Error(1)
}

func (m *mockReviewService) Update(ctx context.Context, userID string, reviewID int64, reviewText string, rating int) (*models.Review, error) {
	args := m.Called(ctx, userID, reviewID, reviewText, rating)
	var review *models.Review
	if v := args.Get(0); v != nil {
		review = v.(*models.Review)
	}
	return review, args.Error(1)
}

func (m *mockReviewService) Delete(ctx context.Context, userID string, reviewID int64) error {
	return m.Called(ctx, userID, reviewID).Error(0)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(username, email, password, password2 string) (*models.User, error) {
	args := m.Called(username, email, password, password2)
	var user *models.User
	if v := args.Get(0); v != nil {
		user = v.(*models.User)
	}
	return user, args.Error(1)
}

func (m *mockAuthService) Login(username, password string) (string, string, *models.User, error) {
	args := m.Called(username, password)
	var user *models.User
	if v := args.Get(2); v != nil {
		user = v.(*models.User)
	}
	return args.String(0), args.String(1), user, args.Error(3)
}

func (m *mockAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, claims *shared.AuthClaims) error {
	return m.Called(ctx, claims).Error(0)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, tokenString string) (*shared.AuthClaims, error) {
	args := m.Called(ctx, tokenString)
	var claims *shared.AuthClaims
	if v := args.Get(0); v != nil {
		claims = v.(*shared.AuthClaims)
	}
	return claims, args.Error(1)
}
