package middlewares

import (
	"medplan-service/internal/app/config"
	"medplan-service/internal/app/models"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthenticate(t *testing.T) {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	middlewares := New(zap.NewNop(), internalConfig)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID, ok := r.Context().Value(constvars.CONTEXT_STAFF_ID_KEY).(string)
		assert.True(t, ok, "staff id should be set in context")
		assert.Equal(t, "staff-1", staffID)

		role, ok := r.Context().Value(constvars.CONTEXT_STAFF_ROLE_KEY).(string)
		assert.True(t, ok, "staff role should be set in context")
		assert.Equal(t, "physician", role)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		token, err := utils.GenerateStaffJWT("staff-1", "physician", "test-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/v1/events", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/events", nil)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := utils.GenerateStaffJWT("staff-1", "physician", "other-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/v1/events", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := utils.GenerateStaffJWT("staff-1", "physician", "test-secret", -1)
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/v1/events", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	middlewares := New(zap.NewNop(), internalConfig)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	requestWithRole := func(role string) *http.Request {
		token, err := utils.GenerateStaffJWT("staff-1", role, "test-secret", 1)
		require.NoError(t, err)
		req := httptest.NewRequest("PUT", "/api/v1/oncall/staff-2", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		return req
	}

	guarded := middlewares.Authenticate(
		middlewares.RequireRole(models.RoleAdministrator)(testHandler),
	)

	t.Run("allowed role passes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		guarded.ServeHTTP(rr, requestWithRole("administrator"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("other roles are rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		guarded.ServeHTTP(rr, requestWithRole("nurse"))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
