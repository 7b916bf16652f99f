package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/harukimoto/crm-dashboard-api/internal/constants"
	"github.com/harukimoto/crm-dashboard-api/internal/database"
	"github.com/harukimoto/crm-dashboard-api/internal/dto"
	"github.com/harukimoto/crm-dashboard-api/internal/middleware"
	"github.com/harukimoto/crm-dashboard-api/internal/models"
	"github.com/harukimoto/crm-dashboard-api/internal/repository"
	"github.com/harukimoto/crm-dashboard-api/internal/utils"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type orgTestEnv struct {
	db      *gorm.DB
	handler *OrgHandler
}

func setupOrgTestEnv(t *testing.T) orgTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Organization{},
		&models.Membership{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	memberships := repository.NewMembershipRepository(db)
	handler := NewOrgHandler(memberships, zap.NewNop())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return orgTestEnv{db: db, handler: handler}
}

func orgTestContext(url string, octx middleware.OrgContext) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	c.Set(constants.ContextKeyOrgContext, octx)
	return c, w
}

func TestOrgHandler_GetCurrentContext(t *testing.T) {
	env := setupOrgTestEnv(t)

	department := "support"
	c, w := orgTestContext("/api/me", middleware.OrgContext{
		UserID:     "user-1",
		OrgID:      "org-1",
		Role:       models.RoleAdmin,
		Department: &department,
	})

	env.handler.GetCurrentContext(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.OrgContextDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "user-1", response.UserID)
	require.Equal(t, "org-1", response.OrgID)
	require.Equal(t, "admin", response.Role)
	require.NotNil(t, response.Department)
	require.Equal(t, "support", *response.Department)
}

func TestOrgHandler_GetCurrentContext_NullDepartment(t *testing.T) {
	env := setupOrgTestEnv(t)

	c, w := orgTestContext("/api/me", middleware.OrgContext{
		UserID: "user-1",
		OrgID:  "org-1",
		Role:   models.RoleMember,
	})

	env.handler.GetCurrentContext(c)

	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	// Absent department serializes as an explicit null, not "".
	require.Equal(t, "null", string(raw["department"]))
}

func TestOrgHandler_ListMembers(t *testing.T) {
	env := setupOrgTestEnv(t)

	orgID := uuid.NewString()
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, env.db.Create(&models.Membership{
			UserID:    uuid.NewString(),
			OrgID:     orgID,
			Role:      models.RoleMember,
			Status:    models.MembershipActive,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}
	// A member of another org must not appear.
	require.NoError(t, env.db.Create(&models.Membership{
		UserID: uuid.NewString(),
		OrgID:  uuid.NewString(),
		Role:   models.RoleMember,
		Status: models.MembershipActive,
	}).Error)

	c, w := orgTestContext("/api/org/members", middleware.OrgContext{
		UserID: "user-1",
		OrgID:  orgID,
		Role:   models.RoleOwner,
	})

	env.handler.ListMembers(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Members    []dto.OrgMemberDTO       `json:"members"`
		Pagination utils.PaginationResponse `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Members, 3)
	require.EqualValues(t, 3, response.Pagination.Total)
	require.Equal(t, 1, response.Pagination.Page)
}
