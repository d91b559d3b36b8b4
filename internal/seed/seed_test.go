package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"gamevault/backend/internal/content"
	"gamevault/backend/internal/database/dbtest"
	"gamevault/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type allowAll struct{}

func (allowAll) RequireCapability(context.Context, content.Capability) error { return nil }

func TestRun_InsertsCatalogOnce(t *testing.T) {
	db := dbtest.Open(t)
	repo := content.NewRepository(db, allowAll{}, nil, discard)
	ctx := context.Background()

	res, err := Run(ctx, repo, Catalog, discard)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: len(Catalog)}, res)

	game, err := repo.GetGameBySlug(ctx, "elden-ring")
	require.NoError(t, err)
	require.NotNil(t, game.PostReview)
	assert.Equal(t, 4.5, game.PostReview.TotalScore)

	res, err = Run(ctx, repo, Catalog, discard)
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: len(Catalog)}, res)
}

// MockStore mocks the Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateGame(ctx context.Context, fields content.GameFields) (*models.Game, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockStore) GetGameBySlug(ctx context.Context, slug string) (*models.Game, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockStore) CreateReview(ctx context.Context, gameID string, fields content.ReviewFields) (*models.PostReview, error) {
	args := m.Called(ctx, gameID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostReview), args.Error(1)
}

func TestRun_StopsOnUnauthorized(t *testing.T) {
	store := new(MockStore)
	ctx := context.Background()
	entries := []Entry{{Game: content.GameFields{Title: "Hades"}}, {Game: content.GameFields{Title: "Celeste"}}}

	store.On("GetGameBySlug", ctx, "hades").Return(nil, content.ErrNotFound)
	store.On("CreateGame", ctx, entries[0].Game).Return(nil, content.ErrUnauthorized)

	res, err := Run(ctx, store, entries, discard)
	assert.True(t, errors.Is(err, content.ErrUnauthorized))
	assert.Zero(t, res.Created)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "GetGameBySlug", ctx, "celeste")
}

func TestRun_LookupFailure(t *testing.T) {
	store := new(MockStore)
	ctx := context.Background()
	boom := errors.New("connection refused")

	store.On("GetGameBySlug", ctx, "hades").Return(nil, boom)

	_, err := Run(ctx, store, []Entry{{Game: content.GameFields{Title: "Hades"}}}, discard)
	assert.ErrorIs(t, err, boom)
	store.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything)
}
