package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/harukimoto/crm-dashboard-api/internal/identity"
	"github.com/harukimoto/crm-dashboard-api/internal/models"
	"github.com/harukimoto/crm-dashboard-api/internal/repository"
	"github.com/harukimoto/crm-dashboard-api/internal/utils"
)

type stubProvider struct {
	identity *identity.Identity
	err      error
	calls    int
}

func (p *stubProvider) Verify(_ context.Context, _ string) (*identity.Identity, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.identity, nil
}

type stubMemberships struct {
	membership *models.Membership
	err        error
	calls      int
}

func (r *stubMemberships) FindAuthoritative(_ string) (*models.Membership, error) {
	r.calls++
	return r.membership, r.err
}

func (r *stubMemberships) ListMembers(_ string, _ utils.PaginationParams) ([]models.Membership, int64, error) {
	return nil, 0, nil
}

func (r *stubMemberships) FindDuplicateActive() ([]repository.DuplicateMembership, error) {
	return nil, nil
}

func guardedRouter(provider identity.Provider, memberships repository.MembershipRepository, probe gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireOrgContext(provider, memberships), probe)
	return r
}

func doGuarded(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireOrgContext_MalformedHeaders(t *testing.T) {
	headers := []string{"", "Token abc", "bearer abc", "Bearer "}

	for _, header := range headers {
		provider := &stubProvider{identity: &identity.Identity{UserID: "user-1"}}
		memberships := &stubMemberships{}
		r := guardedRouter(provider, memberships, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := doGuarded(r, header)

		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		require.Contains(t, w.Body.String(), "error")
		// The credential never reached the provider or the store.
		require.Zero(t, provider.calls, "header %q", header)
		require.Zero(t, memberships.calls, "header %q", header)
	}
}

func TestRequireOrgContext_InvalidToken(t *testing.T) {
	provider := &stubProvider{err: identity.ErrInvalidToken}
	memberships := &stubMemberships{}
	r := guardedRouter(provider, memberships, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := doGuarded(r, "Bearer expired-token")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	// Membership resolution must not run for unauthenticated callers.
	require.Zero(t, memberships.calls)
}

func TestRequireOrgContext_NoMembershipIsForbidden(t *testing.T) {
	provider := &stubProvider{identity: &identity.Identity{UserID: "user-1"}}
	memberships := &stubMemberships{membership: nil}
	r := guardedRouter(provider, memberships, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := doGuarded(r, "Bearer valid-token")

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, 1, provider.calls)
	require.Equal(t, 1, memberships.calls)
}

func TestRequireOrgContext_ResolvesContext(t *testing.T) {
	department := "sales"
	provider := &stubProvider{identity: &identity.Identity{UserID: "user-1"}}
	memberships := &stubMemberships{membership: &models.Membership{
		UserID:     "user-1",
		OrgID:      "org-42",
		Role:       models.RoleAdmin,
		Department: &department,
		Status:     models.MembershipActive,
	}}

	var captured OrgContext
	r := guardedRouter(provider, memberships, func(c *gin.Context) {
		octx, ok := GetOrgContext(c)
		require.True(t, ok)
		captured = octx
		c.Status(http.StatusOK)
	})

	w := doGuarded(r, "Bearer valid-token")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-1", captured.UserID)
	require.Equal(t, "org-42", captured.OrgID)
	require.Equal(t, models.RoleAdmin, captured.Role)
	require.NotNil(t, captured.Department)
	require.Equal(t, "sales", *captured.Department)
}

func TestRequireOrgContext_DepartmentStaysNil(t *testing.T) {
	provider := &stubProvider{identity: &identity.Identity{UserID: "user-1"}}
	memberships := &stubMemberships{membership: &models.Membership{
		UserID: "user-1",
		OrgID:  "org-42",
		Role:   models.RoleMember,
		Status: models.MembershipActive,
	}}

	r := guardedRouter(provider, memberships, func(c *gin.Context) {
		octx, ok := GetOrgContext(c)
		require.True(t, ok)
		require.Nil(t, octx.Department)
		c.Status(http.StatusOK)
	})

	w := doGuarded(r, "Bearer valid-token")
	require.Equal(t, http.StatusOK, w.Code)
}
