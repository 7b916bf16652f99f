package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/harukimoto/crm-dashboard-api/internal/constants"
	apierrors "github.com/harukimoto/crm-dashboard-api/internal/errors"
	"github.com/harukimoto/crm-dashboard-api/internal/identity"
	"github.com/harukimoto/crm-dashboard-api/internal/models"
	"github.com/harukimoto/crm-dashboard-api/internal/repository"
)

// OrgContext is the per-request resolved tenant context. It is derived
// from the verified identity and the membership store only; an org id
// supplied by the client is never trusted. Lifetime is one request.
type OrgContext struct {
	UserID     string
	OrgID      string
	Role       models.MembershipRole
	Department *string
}

// RequireOrgContext is the single authorization gate for tenant-scoped
// routes: it verifies the bearer credential, resolves the caller's
// authoritative membership, and stores the result in the gin context.
// Identity verification always completes before the membership lookup so
// membership state never leaks to unauthenticated callers. Nothing is
// cached across requests; a revoked membership takes effect on the next
// request.
func RequireOrgContext(provider identity.Provider, memberships repository.MembershipRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := identity.ParseBearer(c.GetHeader("Authorization"))
		if err != nil {
			apierrors.AbortWith(c, apierrors.Unauthenticated(""))
			return
		}

		ident, err := provider.Verify(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrInvalidToken) {
				apierrors.AbortWith(c, apierrors.Unauthenticated("Invalid or expired credential"))
			} else {
				apierrors.AbortWith(c, apierrors.Internal("Identity verification failed"))
			}
			return
		}

		membership, err := memberships.FindAuthoritative(ident.UserID)
		if err != nil {
			apierrors.AbortWith(c, apierrors.Internal("Failed to resolve membership"))
			return
		}
		if membership == nil {
			apierrors.AbortWith(c, apierrors.NoMembership(""))
			return
		}

		c.Set(constants.ContextKeyOrgContext, OrgContext{
			UserID:     ident.UserID,
			OrgID:      membership.OrgID,
			Role:       membership.Role,
			Department: membership.Department,
		})
		c.Next()
	}
}

// GetOrgContext retrieves the resolved org context from the gin context
func GetOrgContext(c *gin.Context) (OrgContext, bool) {
	value, exists := c.Get(constants.ContextKeyOrgContext)
	if !exists {
		return OrgContext{}, false
	}
	octx, ok := value.(OrgContext)
	return octx, ok
}
