package middleware

import (
	"net/http"
	"strings"

	"moviehub/internal/service"
	"moviehub/internal/shared"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key the auth middlewares store the
// principal under.
const ClaimsKey = "claims"

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a token in the Authorization header.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, authService)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
			c.Abort()
			return
		}

		setPrincipal(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves the principal when a valid token is present but
// lets anonymous requests through. Read endpoints use it so throttling can
// key on the user instead of the IP when one is known.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, authService); ok {
			setPrincipal(c, claims)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, authService service.AuthService) (*shared.AuthClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	// Extract token (format: "Bearer <token>")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := authService.ValidateToken(c.Request.Context(), parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setPrincipal(c *gin.Context, claims *shared.AuthClaims) {
	c.Set(ClaimsKey, claims)
	c.Set("userID", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("role", claims.Role)
}

// RequireRole checks if the user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		userRole, ok := roleInterface.(string)
		if !ok || userRole != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin is a convenience function for requiring admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole("admin")
}

// PrincipalFromContext returns the authenticated claims, or nil for
// anonymous requests.
func PrincipalFromContext(c *gin.Context) *shared.AuthClaims {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*shared.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
