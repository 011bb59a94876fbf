package middleware

import (
	"strings"

	"reclaim/internal/delivery/api/response"
	deliverycontext "reclaim/internal/delivery/context"
	"reclaim/internal/domain/constants"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		userID := claims.UserID
		if userID == uuid.Nil {
			// tokens minted elsewhere may only carry sub
			userID, err = uuid.Parse(claims.Subject)
			if err != nil {
				return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID format in token")
			}
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyRoles, entity.RolesFromStrings(claims.Roles))
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithCollector(c.Request().Context(), userID, nil)))

		return next(c)
	}
}

// RequireRole admits callers holding any of the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			granted, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			for _, role := range roles {
				if granted.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
		}
	}
}

// GetUserID returns the authenticated caller.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetRoles returns the caller's validated roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(constants.ContextKeyRoles).(entity.Roles)

	return roles, ok
}
