package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	user *models.User
	err  error
}

func (s *stubResolver) Resolve(token string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func gateRouter(resolver auth.Resolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SessionCookie: "teampulse_session"}
	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(auth.RequireAuth(resolver, cfg))
	protected.GET("/teams", func(c *gin.Context) {
		user, _ := auth.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID.String()})
	})
	return router
}

// TestRequireAuthNoToken tests that requests without a session are
// rejected with a login redirect hint
func TestRequireAuthNoToken(t *testing.T) {
	router := gateRouter(&stubResolver{err: apperrors.ErrUnauthenticated})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	var body map[string]interface{}
	testutils.ParseJSONResponse(t, recorder, &body)
	assert.Equal(t, "/login", body["redirect"])
}

// TestRequireAuthValidCookie tests that a valid session cookie passes
// through and the user lands in the request context
func TestRequireAuthValidCookie(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "admin@teampulse.dev"}
	router := gateRouter(&stubResolver{user: user})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	req.AddCookie(&http.Cookie{Name: "teampulse_session", Value: "valid-token"})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]interface{}
	testutils.ParseJSONResponse(t, recorder, &body)
	assert.Equal(t, user.ID.String(), body["user_id"])
}

// TestRequireAuthBearerFallback tests the Authorization header fallback
// for non-browser clients
func TestRequireAuthBearerFallback(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "admin@teampulse.dev"}
	router := gateRouter(&stubResolver{user: user})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

// TestRequireAuthExpiredSession tests that an expired session surfaces
// its message with a 401
func TestRequireAuthExpiredSession(t *testing.T) {
	router := gateRouter(&stubResolver{err: apperrors.ErrSessionExpired})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	req.AddCookie(&http.Cookie{Name: "teampulse_session", Value: "stale-token"})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "session has expired")
}
