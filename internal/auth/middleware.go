package auth

import (
	"strings"

	"identity-org-backend/internal/api/response"
	apperrors "identity-org-backend/internal/errors"
	"identity-org-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

// TokenDecoder turns a bearer token into claims
type TokenDecoder interface {
	Decode(token string) (*Claims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	decoder TokenDecoder
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(decoder TokenDecoder) *AuthMiddleware {
	return &AuthMiddleware{decoder: decoder}
}

// RequireAuth resolves the bearer token to a subject id or aborts with 401
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.WithContext(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			log.Debug("missing or malformed authorization header")
			m.reject(c)
			return
		}

		claims, err := m.decoder.Decode(strings.TrimSpace(tokenString))
		if err != nil {
			log.WithError(err).Debug("token rejected")
			m.reject(c)
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			log.WithField("subject", claims.Subject).Debug("token subject is not a user id")
			m.reject(c)
			return
		}

		SetUserID(c, userID)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), userID.String()))

		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context) {
	response.Error(c, apperrors.ErrUnauthenticated)
	c.Abort()
}

// GetUserID returns the authenticated subject set by RequireAuth
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// SetUserID stores the authenticated subject on the gin context
func SetUserID(c *gin.Context, userID uuid.UUID) {
	c.Set(userIDKey, userID)
}
