package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourbook/models"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserRepo struct {
	users map[string]*models.User
	err   error
}

func (s *stubUserRepo) Create(context.Context, *models.User) error { return nil }
func (s *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}
func (s *stubUserRepo) GetByEmail(context.Context, string) (*models.User, error)     { return nil, nil }
func (s *stubUserRepo) GetByIDs(context.Context, []string) ([]models.User, error)    { return nil, nil }
func (s *stubUserRepo) GetAll(context.Context) ([]models.User, error)                { return nil, nil }
func (s *stubUserRepo) UpdateFields(context.Context, string, bson.M, ...string) error { return nil }

type memCache struct {
	hashes map[string]string
	err    error
}

func (m *memCache) Lookup(_ context.Context, userID string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	h, ok := m.hashes[userID]
	return h, ok, nil
}

func (m *memCache) Store(_ context.Context, userID, hash string) error {
	m.hashes[userID] = hash
	return nil
}

func issue(t *testing.T, id string, role models.Role) string {
	token, err := utils.GenerateToken(id, id+"@example.com", string(role), time.Hour)
	require.NoError(t, err)
	return token
}

func protectedRouter(repo *stubUserRepo, cache TokenHashCache, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthUserMiddleware(repo, cache)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actor, _ := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.UserID, "role": actor.Role})
	})
	r.GET("/me", handlers...)
	return r
}

func call(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := protectedRouter(&stubUserRepo{}, nil)
	assert.Equal(t, http.StatusUnauthorized, call(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "garbage").Code)
}

func TestAuthFallsBackToDatabaseAndWarmsCache(t *testing.T) {
	token := issue(t, "u1", models.RoleUser)
	repo := &stubUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Role: models.RoleUser, TokenHash: utils.HashToken(token)},
	}}
	cache := &memCache{hashes: map[string]string{}}

	w := call(protectedRouter(repo, cache), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
	assert.Equal(t, utils.HashToken(token), cache.hashes["u1"])
}

func TestAuthRejectsSupersededToken(t *testing.T) {
	token := issue(t, "u1", models.RoleUser)
	repo := &stubUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Role: models.RoleUser, TokenHash: "newer-token-hash"},
	}}
	assert.Equal(t, http.StatusUnauthorized, call(protectedRouter(repo, nil), token).Code)

	cache := &memCache{hashes: map[string]string{"u1": "newer-token-hash"}}
	assert.Equal(t, http.StatusUnauthorized, call(protectedRouter(repo, cache), token).Code)
}

func TestAuthUsesCacheHit(t *testing.T) {
	token := issue(t, "u1", models.RoleUser)
	repo := &stubUserRepo{err: errors.New("database unavailable")}
	cache := &memCache{hashes: map[string]string{"u1": utils.HashToken(token)}}

	assert.Equal(t, http.StatusOK, call(protectedRouter(repo, cache), token).Code)
}

func TestRequireRole(t *testing.T) {
	userToken := issue(t, "u1", models.RoleUser)
	adminToken := issue(t, "a1", models.RoleAdmin)
	repo := &stubUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Role: models.RoleUser, TokenHash: utils.HashToken(userToken)},
		"a1": {ID: "a1", Role: models.RoleAdmin, TokenHash: utils.HashToken(adminToken)},
	}}
	r := protectedRouter(repo, nil, RequireRole(models.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, call(r, userToken).Code)
	assert.Equal(t, http.StatusOK, call(r, adminToken).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestGetClientIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "198.51.100.4:5555"
	assert.Equal(t, "198.51.100.4", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", "192.0.2.1")
	assert.Equal(t, "192.0.2.1", getClientIP(c))
}
