package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"food_order/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "name", "email", "mobile", "address", "password", "role", "dob", "created_at"}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("A", "a@x.com", "9998887770", "12 street", "hash", model.RoleUser).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))

	user := &model.User{Name: "A", Email: "a@x.com", Mobile: "9998887770", Address: "12 street", PasswordHash: "hash", Role: model.RoleUser}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	cases := []struct {
		constraint string
		want       error
	}{
		{"users_email_key", ErrDuplicateEmail},
		{"users_mobile_key", ErrDuplicateMobile},
	}
	for _, tc := range cases {
		t.Run(tc.constraint, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewUserRepository(mock)

			mock.ExpectQuery("INSERT INTO users").
				WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
				WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: tc.constraint})

			err := repo.Create(context.Background(), &model.User{})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUserRepository_FindByMobile(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE mobile = \\$1").
		WithArgs("9998887770").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(int64(1), "A", "a@x.com", "9998887770", "12 street", "hash", model.RoleUser, nil, now))

	user, err := repo.FindByMobile(context.Background(), "9998887770")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Nil(t, user.DOB)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByMobile_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE mobile = \\$1").
		WithArgs("000").
		WillReturnRows(pgxmock.NewRows(userCols))

	user, err := repo.FindByMobile(context.Background(), "000")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_FindByID_DBError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnError(errors.New("connection reset"))

	user, err := repo.FindByID(context.Background(), 5)

	assert.Nil(t, user)
	assert.ErrorContains(t, err, "connection reset")
}

func TestUserRepository_FindByEmailOrMobile(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1 OR mobile = \\$2").
		WithArgs("a@x.com", "9998887770").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(int64(1), "A", "a@x.com", "1111111111", "addr one", "h1", model.RoleUser, nil, now).
			AddRow(int64(2), "B", "b@x.com", "9998887770", "addr two", "h2", model.RoleUser, nil, now))

	users, err := repo.FindByEmailOrMobile(context.Background(), "a@x.com", "9998887770")

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@x.com", users[0].Email)
	assert.Equal(t, "9998887770", users[1].Mobile)
	assert.NoError(t, mock.ExpectationsWereMet())
}
