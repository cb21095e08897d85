package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newUserMock(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	})
	return NewUserRepository(db), mock
}

func TestUserRepository_CreateStampsUTC(t *testing.T) {
	repo, mock := newUserMock(t)
	local := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	repo.now = func() time.Time { return local }

	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("operator", "h123", local.UTC()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Create(ctx(t), "operator", "h123")
	if err != nil || id != 42 {
		t.Fatalf("Create: id=%d err=%v", id, err)
	}
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	repo, mock := newUserMock(t)
	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("operator", "h", sqlmock.AnyArg()).
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)"))

	if _, err := repo.Create(ctx(t), "operator", "h"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	repo, mock := newUserMock(t)
	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
		WithArgs("operator").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(7, "operator", "h123", created))
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	u, err := repo.GetByUsername(ctx(t), "operator")
	if err != nil || u == nil || u.ID != 7 || u.PasswordHash != "h123" || !u.CreatedAt.Equal(created) {
		t.Fatalf("found: %+v, %v", u, err)
	}
	u, err = repo.GetByUsername(ctx(t), "missing")
	if err != nil || u != nil {
		t.Fatalf("missing: expected (nil, nil), got %+v, %v", u, err)
	}
}
