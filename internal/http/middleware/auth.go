package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SERMEX0/sermex-backend/internal/token"
)

const identityKey = "authIdentity"

// Identity is the authenticated identity attached to a request after the
// bearer credential checks out. It lives only for the request.
type Identity struct {
	UserID int64
	Correo string
}

// Auth validates the Authorization header and attaches the caller identity.
type Auth struct {
	Tokens *token.Issuer
}

func NewAuth(tokens *token.Issuer) *Auth {
	return &Auth{Tokens: tokens}
}

// RequireAuth rejects requests without a bearer credential (401) or with an
// invalid/expired one (403); otherwise it attaches the Identity and continues.
func (m *Auth) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token requerido"})
		return
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token requerido"})
		return
	}

	claims, err := m.Tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token inválido o expirado"})
		return
	}

	c.Set(identityKey, Identity{UserID: claims.UserID, Correo: claims.Correo})
	c.Next()
}

// GetIdentity extracts the authenticated identity set by RequireAuth.
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
