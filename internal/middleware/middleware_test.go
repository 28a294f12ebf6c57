package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"furnistore-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubUserRepo implements just enough of user.Repository for the middleware.
type stubUserRepo struct {
	user.Repository
	users map[int64]*user.User
}

func (s *stubUserRepo) FindByID(ctx context.Context, userID int64) (*user.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func newTestRouter(repo user.Repository, roles ...user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{Auth(repo)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		u, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": u.UserID})
	})

	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	repo := &stubUserRepo{users: map[int64]*user.User{
		1: {UserID: 1, Username: "buyer", Role: user.RoleMember, IsActive: true},
	}}

	t.Run("NoToken", func(t *testing.T) {
		r := newTestRouter(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		r := newTestRouter(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, _ := user.GenerateJWT(1, "buyer", user.RoleMember)

		r := newTestRouter(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":1`)
	})

	t.Run("TokenFromQueryParam", func(t *testing.T) {
		token, _ := user.GenerateJWT(1, "buyer", user.RoleMember)

		r := newTestRouter(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DisabledAccount", func(t *testing.T) {
		// repo does not know user 2, same as a disabled row
		token, _ := user.GenerateJWT(2, "gone", user.RoleMember)

		r := newTestRouter(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	repo := &stubUserRepo{users: map[int64]*user.User{
		1: {UserID: 1, Username: "buyer", Role: user.RoleMember, IsActive: true},
		2: {UserID: 2, Username: "boss", Role: user.RoleAdmin, IsActive: true},
	}}

	t.Run("MemberBlockedFromAdminRoute", func(t *testing.T) {
		token, _ := user.GenerateJWT(1, "buyer", user.RoleMember)

		r := newTestRouter(repo, user.RoleAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("AdminAllowed", func(t *testing.T) {
		token, _ := user.GenerateJWT(2, "boss", user.RoleAdmin)

		r := newTestRouter(repo, user.RoleAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLimiterIdentity(t *testing.T) {
	t.Run("DeviceHeaderWins", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/api/products", nil)
		c.Request.Header.Set("X-Device-ID", "tablet-42")

		assert.Equal(t, "device:tablet-42", limiterIdentity(c))
	})

	t.Run("FallsBackToIP", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/api/products", nil)
		c.Request.RemoteAddr = "203.0.113.7:51234"

		assert.Equal(t, "ip:203.0.113.7", limiterIdentity(c))
	})
}
