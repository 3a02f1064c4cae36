package middleware

import (
	"strings"

	"hotelier/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorContextKey = "actor"

// ActorMiddleware resolves who is acting for status-log attribution. A valid
// bearer token wins, the X-Actor header is the fallback, and an absent or
// broken credential leaves the actor empty rather than rejecting the request.
// Operator identity here is attribution, not authorization.
type ActorMiddleware struct {
	secret []byte
}

func NewActorMiddleware(cfg config.JWTConfig) *ActorMiddleware {
	return &ActorMiddleware{secret: []byte(cfg.Secret)}
}

func (m *ActorMiddleware) ResolveActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := m.actorFromToken(c); actor != "" {
			c.Set(actorContextKey, actor)
		} else if header := strings.TrimSpace(c.GetHeader("X-Actor")); header != "" {
			c.Set(actorContextKey, header)
		}
		c.Next()
	}
}

func (m *ActorMiddleware) actorFromToken(c *gin.Context) string {
	if len(m.secret) == 0 {
		return ""
	}

	auth := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}

	token, err := jwt.Parse(strings.TrimPrefix(auth, prefix), func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

func GetActor(c *gin.Context) string {
	if actor, exists := c.Get(actorContextKey); exists {
		if s, ok := actor.(string); ok {
			return s
		}
	}
	return ""
}
