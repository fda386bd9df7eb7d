package middleware

import (
	"net/http"
	"strings"
	"time"

	"staff-leave-portal/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Claims mirror what the auth usecase signs at login.
type Claims struct {
	Sub        string `json:"sub"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

const claimsContextKey = "auth_claims"

func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "invalid Authorization header"})
	}
	return parts[1], nil
}

// RequireAuth verifies the bearer token (HS256 only) and attaches the
// claims to the request context.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			token, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
				// reject alg swapping
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "invalid token method"})
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "invalid claims"})
			}
			if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "token expired"})
			}
			SetClaims(c, claims)
			return next(c)
		}
	}
}

// RequireRole allows only the listed roles; it must run after RequireAuth.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	allowed := map[user.Role]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "missing identity"})
			}
			if _, ok := allowed[user.Role(claims.Role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// SetClaims attaches verified claims to the request context.
func SetClaims(c echo.Context, claims *Claims) {
	c.Set(claimsContextKey, claims)
}

// ClaimsFrom returns the verified claims, or nil outside RequireAuth.
func ClaimsFrom(c echo.Context) *Claims {
	claims, _ := c.Get(claimsContextKey).(*Claims)
	return claims
}
