package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/service"
	apperrors "nanocart/pkg/errors"
	"nanocart/pkg/response"
)

const (
	ContextKeyClaims = "claims"
	ContextKeyUID    = "uid"
)

type AuthMiddleware struct {
	tokens service.TokenService
}

func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate verifies the Bearer credential and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Error(c, apperrors.Unauthorized("Token is Missing", nil))
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return response.Error(c, apperrors.Unauthorized("Token is Missing", nil))
		}

		claims, err := m.tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.Error(c, apperrors.Unauthorized("Token has Expired", err))
			}
			return response.Error(c, apperrors.Unauthorized("Token is Invalid", err))
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUID, claims.Subject())

		return next(c)
	}
}

// ClaimsFrom returns the claims stored by Authenticate, or nil.
func ClaimsFrom(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextKeyClaims).(*service.Claims)
	return claims
}

func requireRole(message string, allowed func(*service.Claims) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return response.Error(c, apperrors.Unauthorized("Token is Missing", nil))
			}
			if !allowed(claims) {
				return response.Error(c, apperrors.Forbidden(message, nil))
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole("Admin access required", func(claims *service.Claims) bool {
		return claims.Role == entity.RoleAdmin
	})(next)
}

func (m *AuthMiddleware) PartnerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole("Partner access required", func(claims *service.Claims) bool {
		return claims.Role == entity.RolePartner
	})(next)
}

// UserOnly admits plain users; an account promoted to partner no longer passes.
func (m *AuthMiddleware) UserOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole("User access required", func(claims *service.Claims) bool {
		return claims.Role == entity.RoleUser && !claims.IsPartner
	})(next)
}
