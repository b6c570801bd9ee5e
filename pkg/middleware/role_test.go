package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	claims := &domain.Claims{UserID: 1, UserRoleID: roleID}
	return req.WithContext(context.WithValue(req.Context(), ContextKeyUser, claims))
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		middleware     func(http.Handler) http.Handler
		roleID         int
		expectedStatus int
	}{
		{
			name:           "admin passa pelo AdminOrDirector",
			middleware:     AdminOrDirector(),
			roleID:         domain.RoleAdmin,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "diretor passa pelo AdminOrDirector",
			middleware:     AdminOrDirector(),
			roleID:         domain.RoleSalesDirector,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "gerente regional barrado pelo AdminOrDirector",
			middleware:     AdminOrDirector(),
			roleID:         domain.RoleRegionalManager,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "vendedor barrado pelo AdminOnly",
			middleware:     AdminOnly(),
			roleID:         domain.RoleSalesperson,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "líder de vendas passa pelo ManagersOnly",
			middleware:     ManagersOnly(),
			roleID:         domain.RoleSalesLead,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "vendedor barrado pelo ManagersOnly",
			middleware:     ManagersOnly(),
			roleID:         domain.RoleSalesperson,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			recorder := httptest.NewRecorder()
			tt.middleware(next).ServeHTTP(recorder, requestWithRole(tt.roleID))

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}

func TestRoleMiddleware_SemClaims(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	AdminOnly()(next).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
