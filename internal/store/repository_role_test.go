package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

func newTestRoleRepo(t *testing.T) (*roleRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &roleRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestFindRoleByName_Success(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	rows := sqlmock.
		NewRows([]string{"id", "name"}).
		AddRow(id.String(), "admin")

	mock.ExpectQuery("SELECT id, name").
		WithArgs("admin").
		WillReturnRows(rows)

	role, err := repo.FindRoleByName(ctx, "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role.Name != "admin" {
		t.Errorf("expected role admin, got %s", role.Name)
	}
}

func TestFindRoleByName_NotFound(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name"})

	mock.ExpectQuery("SELECT id, name").
		WithArgs("ghost").
		WillReturnRows(rows)

	_, err := repo.FindRoleByName(ctx, "ghost")
	if !errors.Is(err, ErrNoRoleWasFound) {
		t.Fatalf("expected ErrNoRoleWasFound, got %v", err)
	}
}

func TestListUserRoles_Success(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()

	rows := sqlmock.
		NewRows([]string{"id", "name"}).
		AddRow(uuid.New().String(), "admin").
		AddRow(uuid.New().String(), "user")

	mock.ExpectQuery("SELECT r.id, r.name").
		WithArgs(userID).
		WillReturnRows(rows)

	roles, err := repo.ListUserRoles(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
	if roles[0].Name != "admin" || roles[1].Name != "user" {
		t.Errorf("unexpected role names: %v", roles)
	}
}

func TestListUserRoles_Empty(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name"})

	mock.ExpectQuery("SELECT r.id, r.name").
		WillReturnRows(rows)

	roles, err := repo.ListUserRoles(ctx, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roles) != 0 {
		t.Fatalf("expected no roles, got %d", len(roles))
	}
}

func TestAssignRole_Success(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()
	roleID := uuid.New()
	assignmentID := uuid.New()

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "role_id"}).
		AddRow(assignmentID.String(), userID.String(), roleID.String())

	mock.ExpectQuery("INSERT INTO user_role").
		WithArgs(sqlmock.AnyArg(), userID, roleID).
		WillReturnRows(rows)

	assigned, err := repo.AssignRole(ctx, models.UserRole{UserID: userID, RoleID: roleID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assigned.UserID != userID || assigned.RoleID != roleID {
		t.Errorf("unexpected assignment: %+v", assigned)
	}
}

func TestAssignRole_AlreadyAssigned(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO user_role").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.AssignRole(ctx, models.UserRole{UserID: uuid.New(), RoleID: uuid.New()})
	if !errors.Is(err, ErrRoleAlreadyAssigned) {
		t.Fatalf("expected ErrRoleAlreadyAssigned, got %v", err)
	}
}

func TestAssignRole_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO user_role").
		WillReturnError(errors.New("db failure"))

	_, err := repo.AssignRole(ctx, models.UserRole{UserID: uuid.New(), RoleID: uuid.New()})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestRevokeRole_Success(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()
	roleID := uuid.New()

	mock.ExpectExec("DELETE FROM user_role").
		WithArgs(userID, roleID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RevokeRole(ctx, userID, roleID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRevokeRole_NotAssigned(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM user_role").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RevokeRole(ctx, uuid.New(), uuid.New())
	if !errors.Is(err, ErrRoleNotAssigned) {
		t.Fatalf("expected ErrRoleNotAssigned, got %v", err)
	}
}

func TestRevokeRole_DBError(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM user_role").
		WillReturnError(errors.New("db failure"))

	err := repo.RevokeRole(ctx, uuid.New(), uuid.New())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
