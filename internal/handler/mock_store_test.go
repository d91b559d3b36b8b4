package handler

import (
	"context"

	"gamevault/backend/internal/content"
	"gamevault/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockContentStore mocks the ContentStore interface
type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) game(args mock.Arguments) (*models.Game, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockContentStore) review(args mock.Arguments) (*models.PostReview, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostReview), args.Error(1)
}

func (m *MockContentStore) CreateGame(ctx context.Context, fields content.GameFields) (*models.Game, error) {
	return m.game(m.Called(ctx, fields))
}

func (m *MockContentStore) UpdateGame(ctx context.Context, id string, fields content.GameFields) (*models.Game, error) {
	return m.game(m.Called(ctx, id, fields))
}

func (m *MockContentStore) DeleteGame(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContentStore) ListGames(ctx context.Context, filter content.ListFilter) ([]models.Game, int64, error) {
	args := m.Called(ctx, filter)
	games, _ := args.Get(0).([]models.Game)
	return games, args.Get(1).(int64), args.Error(2)
}

func (m *MockContentStore) GetGameBySlug(ctx context.Context, slug string) (*models.Game, error) {
	return m.game(m.Called(ctx, slug))
}

func (m *MockContentStore) GetGameByID(ctx context.Context, id string) (*models.Game, error) {
	return m.game(m.Called(ctx, id))
}

func (m *MockContentStore) CreateReview(ctx context.Context, gameID string, fields content.ReviewFields) (*models.PostReview, error) {
	return m.review(m.Called(ctx, gameID, fields))
}

func (m *MockContentStore) UpdateReview(ctx context.Context, reviewID string, fields content.ReviewFields) (*models.PostReview, error) {
	return m.review(m.Called(ctx, reviewID, fields))
}

func (m *MockContentStore) GetReviewByGameID(ctx context.Context, gameID string) (*models.PostReview, error) {
	return m.review(m.Called(ctx, gameID))
}
