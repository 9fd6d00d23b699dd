package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-booking-api/internal/models"
	appErrors "github.com/noah-isme/interview-booking-api/pkg/errors"
	"github.com/noah-isme/interview-booking-api/pkg/response"
)

// ContextClaimsKey is the gin context key storing verified token claims.
const ContextClaimsKey = "claims"

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*models.Claims, error)
}

// RequireRole admits requests carrying a valid bearer token of the given role.
// A missing or malformed header is 401 NO_TOKEN, a bad or expired token is 401 INVALID_TOKEN,
// and a token of another role is 403 WRONG_TOKEN_TYPE.
func RequireRole(verifier TokenVerifier, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Abort(c, appErrors.ErrNoToken)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			response.Abort(c, appErrors.ErrInvalidToken)
			return
		}
		if claims.Type != role {
			response.Abort(c, appErrors.ErrWrongTokenType)
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by RequireRole.
func ClaimsFromContext(c *gin.Context) (*models.Claims, bool) {
	value, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.Claims)
	return claims, ok && claims != nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
