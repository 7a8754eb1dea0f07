package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"cotfact/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session tokens are issued by the external auth provider; this middleware
// only verifies them (HS256, shared secret) and exposes the subject. It is
// not a session manager.

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

const subjectKey = "auth_subject"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header is required", http.StatusUnauthorized)
	errBadToken     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// BearerMiddleware validates "Authorization: Bearer <jwt>" headers against
// AUTH_JWT_SECRET. When the secret is not configured the middleware is a
// no-op, so local single-user deployments run unauthenticated.
func BearerMiddleware() gin.HandlerFunc {
	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		return func(c *gin.Context) { c.Next() }
	}

	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(errBadToken.HTTPStatus, errBadToken.ToHTTPError())
			return
		}

		subject, err := verify(raw, key)
		if err != nil {
			c.AbortWithStatusJSON(errBadToken.HTTPStatus, errBadToken.ToHTTPError())
			return
		}

		c.Set(subjectKey, subject)
		c.Next()
	}
}

// Subject returns the authenticated subject, or "" on unauthenticated
// requests.
func Subject(c *gin.Context) string {
	return c.GetString(subjectKey)
}

func verify(raw string, key []byte) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}
