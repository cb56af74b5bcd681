package auth

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"

	HeaderAdminToken = "X-Admin-Token"
)

type roleKey struct{}

func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// GetRole returns the caller role stored by Identify, defaulting to customer.
func GetRole(ctx context.Context) Role {
	if val, ok := ctx.Value(roleKey{}).(Role); ok {
		return val
	}
	return RoleCustomer
}

// Identify tags every request with a role. Without a configured token every
// caller is an operator.
func Identify(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleCustomer
		if adminToken == "" || tokenMatches(c.GetHeader(HeaderAdminToken), adminToken) {
			role = RoleOperator
		}
		c.Request = c.Request.WithContext(WithRole(c.Request.Context(), role))
		c.Next()
	}
}

// RequireOperator rejects callers Identify did not mark as operators.
func RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c.Request.Context()) != RoleOperator {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "operator token required"})
			return
		}
		c.Next()
	}
}

func tokenMatches(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
