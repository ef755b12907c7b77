package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/oauth"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// ---- Mock: RoleService ----

type mockRoleService struct {
	assignFn func(ctx context.Context, actor models.User, req models.RoleChangeRequest) error
	revokeFn func(ctx context.Context, actor models.User, req models.RoleChangeRequest) error
}

func (m *mockRoleService) Assign(ctx context.Context, actor models.User, req models.RoleChangeRequest) error {
	return m.assignFn(ctx, actor, req)
}

func (m *mockRoleService) Revoke(ctx context.Context, actor models.User, req models.RoleChangeRequest) error {
	return m.revokeFn(ctx, actor, req)
}

// ---- Helpers ----

var superuserActor = models.User{ID: uuid.New(), Login: "root", IsSuperuser: true}

func newHandlerWithRoles(roles service.RoleService) *Handler {
	return &Handler{
		logger:    logger.Nop(),
		providers: oauth.NewProviders(testOauthConfig(), logger.Nop()),
		limiter:   oauth.NewClientLimiter(1000),
		services: &service.Services{
			RoleService: roles,
		},
	}
}

func roleRequest(t *testing.T, target string, actor models.User, req models.RoleChangeRequest) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(jsonBody(t, req)))
	return requestWithUser(r, actor)
}

// ---- assignRole ----

func TestAssignRole_Success(t *testing.T) {
	var gotReq models.RoleChangeRequest
	roles := &mockRoleService{
		assignFn: func(_ context.Context, actor models.User, req models.RoleChangeRequest) error {
			assert.Equal(t, superuserActor.ID, actor.ID)
			gotReq = req
			return nil
		},
	}

	h := newHandlerWithRoles(roles)
	req := roleRequest(t, "/api/v1/role/assign", superuserActor, models.RoleChangeRequest{UserLogin: "alice", RoleName: "admin"})
	rec := httptest.NewRecorder()

	h.assignRole(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", gotReq.UserLogin)
	assert.Equal(t, "admin", gotReq.RoleName)
	assert.Contains(t, rec.Body.String(), "assigned")
}

func TestAssignRole_NotSuperuser(t *testing.T) {
	roles := &mockRoleService{
		assignFn: func(_ context.Context, _ models.User, _ models.RoleChangeRequest) error {
			return service.ErrForbidden
		},
	}

	h := newHandlerWithRoles(roles)
	actor := models.User{ID: uuid.New(), Login: "alice"}
	req := roleRequest(t, "/api/v1/role/assign", actor, models.RoleChangeRequest{UserLogin: "bob", RoleName: "admin"})
	rec := httptest.NewRecorder()

	h.assignRole(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAssignRole_AlreadyAssigned(t *testing.T) {
	roles := &mockRoleService{
		assignFn: func(_ context.Context, _ models.User, _ models.RoleChangeRequest) error {
			return store.ErrRoleAlreadyAssigned
		},
	}

	h := newHandlerWithRoles(roles)
	req := roleRequest(t, "/api/v1/role/assign", superuserActor, models.RoleChangeRequest{UserLogin: "alice", RoleName: "admin"})
	rec := httptest.NewRecorder()

	h.assignRole(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAssignRole_UnknownRole(t *testing.T) {
	roles := &mockRoleService{
		assignFn: func(_ context.Context, _ models.User, _ models.RoleChangeRequest) error {
			return store.ErrNoRoleWasFound
		},
	}

	h := newHandlerWithRoles(roles)
	req := roleRequest(t, "/api/v1/role/assign", superuserActor, models.RoleChangeRequest{UserLogin: "alice", RoleName: "ghost"})
	rec := httptest.NewRecorder()

	h.assignRole(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssignRole_NoUserInContext(t *testing.T) {
	h := newHandlerWithRoles(&mockRoleService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/role/assign", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.assignRole(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAssignRole_InvalidJSON(t *testing.T) {
	h := newHandlerWithRoles(&mockRoleService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/role/assign", strings.NewReader("{not json"))
	req = requestWithUser(req, superuserActor)
	rec := httptest.NewRecorder()

	h.assignRole(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- revokeRole ----

func TestRevokeRole_Success(t *testing.T) {
	roles := &mockRoleService{
		revokeFn: func(_ context.Context, _ models.User, req models.RoleChangeRequest) error {
			assert.Equal(t, "admin", req.RoleName)
			return nil
		},
	}

	h := newHandlerWithRoles(roles)
	req := roleRequest(t, "/api/v1/role/revoke", superuserActor, models.RoleChangeRequest{UserLogin: "alice", RoleName: "admin"})
	rec := httptest.NewRecorder()

	h.revokeRole(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "revoked")
}

func TestRevokeRole_NotAssigned(t *testing.T) {
	roles := &mockRoleService{
		revokeFn: func(_ context.Context, _ models.User, _ models.RoleChangeRequest) error {
			return store.ErrRoleNotAssigned
		},
	}

	h := newHandlerWithRoles(roles)
	req := roleRequest(t, "/api/v1/role/revoke", superuserActor, models.RoleChangeRequest{UserLogin: "alice", RoleName: "admin"})
	rec := httptest.NewRecorder()

	h.revokeRole(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
