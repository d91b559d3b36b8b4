package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/cache"
	"gamevault/backend/internal/catalog"
	"gamevault/backend/internal/content"
	"gamevault/backend/internal/database/dbtest"
	"gamevault/backend/internal/hub"
	"gamevault/backend/internal/models"
	"gamevault/backend/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// testNow is a fixed afternoon so picks and countdowns are predictable.
var testNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

type testEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	repo       *content.Repository
	views      *cache.RedisViews
	events     *hub.Hub
	games      *GameHandler
	adminToken string
	userToken  string
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// newTestEnv wires the real repository, a Redis view cache and the full
// route table, with one admin and one regular user.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := dbtest.Open(t)
	mr := miniredis.RunT(t)
	views := cache.NewRedisViewsWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	t.Cleanup(func() { views.Close() })

	events := hub.NewHub()
	guard := content.NewRoleGuard(auth.NewUserRoles(db))
	repo := content.NewRepository(db, guard, cache.NewInvalidator(views, events, discard), discard)

	picks := catalog.NewSelector(time.UTC)
	picks.Now = func() time.Time { return testNow }

	games := NewGameHandler(repo, views, events, picks, discard)
	games.TickInterval = 5 * time.Millisecond
	users := NewUserHandler(db, testSecret, time.Hour, discard)

	router := setupRouter()
	RegisterRoutes(router, games, users, RouteConfig{JWTSecret: testSecret, Guard: guard})

	return &testEnv{
		router:     router,
		db:         db,
		repo:       repo,
		views:      views,
		events:     events,
		games:      games,
		adminToken: createUser(t, db, "admin", models.RoleAdmin),
		userToken:  createUser(t, db, "player", models.RoleUser),
	}
}

func createUser(t *testing.T, db *gorm.DB, nickname, role string) string {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{Nickname: nickname, Email: nickname + "@example.com", PasswordHash: hash, Role: role}
	require.NoError(t, db.Create(&user).Error)

	token, err := jwt.GenerateToken(user.ID, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// closeNotifyingRecorder lets gin's Stream run against a recorder.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyingRecorder() *closeNotifyingRecorder {
	return &closeNotifyingRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (c *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return c.closed
}
