package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/services"
)

const (
	authorizationHeader = "Authorization"
	authorizationType   = "Bearer"
	ContextUserIDKey    = "userID"
	ContextIdentityKey  = "identity"
	ContextRoleKey      = "role"
)

// TokenValidator is satisfied by *services.TokenService.
type TokenValidator interface {
	ValidateToken(tokenString string) (*services.Principal, error)
}

func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || fields[0] != authorizationType {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		principal, err := tokens.ValidateToken(fields[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// GuestMiddleware stands in for AuthMiddleware when authentication is turned
// off: every request acts as the guest student.
func GuestMiddleware() gin.HandlerFunc {
	guest := &services.Principal{UserID: "guest", Email: domain.GuestIdentity, Role: domain.RoleStudent}
	return func(c *gin.Context) {
		setPrincipal(c, guest)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated caller has role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRoleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

func setPrincipal(c *gin.Context, p *services.Principal) {
	c.Set(ContextUserIDKey, p.UserID)
	c.Set(ContextIdentityKey, p.Email)
	c.Set(ContextRoleKey, p.Role)
}

func GetUserID(c *gin.Context) (string, bool) {
	return getString(c, ContextUserIDKey)
}

// GetIdentity returns the ledger identity of the authenticated caller.
func GetIdentity(c *gin.Context) (string, bool) {
	return getString(c, ContextIdentityKey)
}

func getString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}
