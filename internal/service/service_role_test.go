package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoleSvc(t *testing.T, ctrl *gomock.Controller) (RoleService, *mock.MockUserRepository, *mock.MockRoleRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	mockRoles := mock.NewMockRoleRepository(ctrl)

	svc := NewRoleService(mockUsers, mockRoles, logger.NewLogger("test"))

	return svc, mockUsers, mockRoles
}

var superuser = models.User{ID: uuid.New(), Login: "root", IsSuperuser: true}

func TestRoleAssign_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockRoles := newTestRoleSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: uuid.New(), Login: "john"}
	role := models.Role{ID: uuid.New(), Name: "admin"}

	mockUsers.EXPECT().FindUserByLogin(ctx, models.User{Login: "john"}).Return(user, nil)
	mockRoles.EXPECT().FindRoleByName(ctx, "admin").Return(role, nil)
	mockRoles.EXPECT().ListUserRoles(ctx, user.ID).Return([]models.Role{{ID: uuid.New(), Name: "user"}}, nil)
	mockRoles.EXPECT().AssignRole(ctx, models.UserRole{UserID: user.ID, RoleID: role.ID}).Return(models.UserRole{}, nil)

	err := svc.Assign(ctx, superuser, models.RoleChangeRequest{UserLogin: "john", RoleName: "admin"})
	require.NoError(t, err)
}

func TestRoleAssign_NotSuperuser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestRoleSvc(t, ctrl)

	actor := models.User{ID: uuid.New(), Login: "john"}

	err := svc.Assign(context.Background(), actor, models.RoleChangeRequest{UserLogin: "john", RoleName: "admin"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRoleAssign_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockRoles := newTestRoleSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: uuid.New(), Login: "john"}
	role := models.Role{ID: uuid.New(), Name: "admin"}

	mockUsers.EXPECT().FindUserByLogin(ctx, models.User{Login: "john"}).Return(user, nil)
	mockRoles.EXPECT().FindRoleByName(ctx, "admin").Return(role, nil)
	mockRoles.EXPECT().ListUserRoles(ctx, user.ID).Return([]models.Role{role}, nil)
	// AssignRole must not be called

	err := svc.Assign(ctx, superuser, models.RoleChangeRequest{UserLogin: "john", RoleName: "admin"})
	assert.ErrorIs(t, err, store.ErrRoleAlreadyAssigned)
}

func TestRoleAssign_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockRoles := newTestRoleSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByLogin(ctx, models.User{Login: "john"}).Return(models.User{ID: uuid.New(), Login: "john"}, nil)
	mockRoles.EXPECT().FindRoleByName(ctx, "ghost").Return(models.Role{}, store.ErrNoRoleWasFound)

	err := svc.Assign(ctx, superuser, models.RoleChangeRequest{UserLogin: "john", RoleName: "ghost"})
	assert.ErrorIs(t, err, store.ErrNoRoleWasFound)
}

func TestRoleAssign_EmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestRoleSvc(t, ctrl)

	err := svc.Assign(context.Background(), superuser, models.RoleChangeRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRoleRevoke_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockRoles := newTestRoleSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: uuid.New(), Login: "john"}
	role := models.Role{ID: uuid.New(), Name: "admin"}

	mockUsers.EXPECT().FindUserByLogin(ctx, models.User{Login: "john"}).Return(user, nil)
	mockRoles.EXPECT().FindRoleByName(ctx, "admin").Return(role, nil)
	mockRoles.EXPECT().RevokeRole(ctx, user.ID, role.ID).Return(nil)

	err := svc.Revoke(ctx, superuser, models.RoleChangeRequest{UserLogin: "john", RoleName: "admin"})
	require.NoError(t, err)
}

func TestRoleRevoke_NotAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockRoles := newTestRoleSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: uuid.New(), Login: "john"}
	role := models.Role{ID: uuid.New(), Name: "admin"}

	mockUsers.EXPECT().FindUserByLogin(ctx, models.User{Login: "john"}).Return(user, nil)
	mockRoles.EXPECT().FindRoleByName(ctx, "admin").Return(role, nil)
	mockRoles.EXPECT().RevokeRole(ctx, user.ID, role.ID).Return(store.ErrRoleNotAssigned)

	err := svc.Revoke(ctx, superuser, models.RoleChangeRequest{UserLogin: "john", RoleName: "admin"})
	assert.ErrorIs(t, err, store.ErrRoleNotAssigned)
}

func TestRoleRevoke_NotSuperuser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestRoleSvc(t, ctrl)

	actor := models.User{ID: uuid.New(), Login: "john"}

	err := svc.Revoke(context.Background(), actor, models.RoleChangeRequest{UserLogin: "john", RoleName: "admin"})
	assert.ErrorIs(t, err, ErrForbidden)
}
