package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "reclaim/internal/delivery/context"
	"reclaim/internal/domain/entity"
	"reclaim/internal/domain/service"
	mockSvc "reclaim/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func runAuth(t *testing.T, m *AuthMiddleware, header string, chain ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := okHandler
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	require.NoError(t, m.Authenticate(h)(c))

	return rec, c
}

func TestAuthenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"collector", "bogus"},
	}, nil)

	rec, c := runAuth(t, m, "Bearer good")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	got, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, got)

	roles, ok := GetRoles(c)
	require.True(t, ok)
	assert.Equal(t, entity.Roles{entity.RoleCollector}, roles)

	ctxCollector, ok := deliverycontext.GetCollectorID(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, userID, ctxCollector)
}

func TestAuthenticate_Rejects(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	for _, header := range []string{"", "Token abc", "Bearer expired"} {
		rec, _ := runAuth(t, m, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestRequireRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("collector").Return(&service.Claims{
		UserID: uuid.New(),
		Roles:  []string{"collector"},
	}, nil)
	tokenSvc.EXPECT().ValidateToken("admin").Return(&service.Claims{
		UserID: uuid.New(),
		Roles:  []string{"admin"},
	}, nil)

	guard := m.RequireRole(entity.RoleVerifier, entity.RoleAdmin)

	rec, _ := runAuth(t, m, "Bearer collector", guard)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = runAuth(t, m, "Bearer admin", guard)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
