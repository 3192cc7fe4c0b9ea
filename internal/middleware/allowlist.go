package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clubradar/internal/pkg/response"
)

// AuthorizationPolicy decides whether an identity may invoke payout
// mutation endpoints. The role check in the token is not enough for
// money movement; the policy is injected so the payout core stays
// decoupled from how admin identity is determined.
type AuthorizationPolicy interface {
	IsAllowed(email string) bool
}

// EmailAllowlist is an AuthorizationPolicy backed by a fixed set of
// admin email addresses.
type EmailAllowlist struct {
	emails map[string]bool
}

// NewEmailAllowlist builds the policy from a comma-separated list,
// e.g. ADMIN_EMAILS=admin@clubradar.in,finance@clubradar.in
func NewEmailAllowlist(csv string) *EmailAllowlist {
	emails := make(map[string]bool)
	for _, e := range strings.Split(csv, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails[e] = true
		}
	}
	return &EmailAllowlist{emails: emails}
}

func (a *EmailAllowlist) IsAllowed(email string) bool {
	return a.emails[strings.ToLower(strings.TrimSpace(email))]
}

// RequireAllowlisted gates a route group on the injected policy. Runs
// after RequireAuth, which put the caller's email in the context.
func RequireAllowlisted(policy AuthorizationPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" || !policy.IsAllowed(email) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Identity is not authorized for payout operations")
			c.Abort()
			return
		}
		c.Next()
	}
}
