package repository

import (
	"context"
	"errors"
	"fmt"

	"food_order/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

var (
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrDuplicateMobile = errors.New("mobile already registered")
)

const userColumns = `id, name, email, mobile, address, password, role, dob, created_at`

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByMobile(ctx context.Context, mobile string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmailOrMobile(ctx context.Context, email, mobile string) ([]model.User, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (name, email, mobile, address, password, role)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, user.Name, user.Email, user.Mobile, user.Address, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return ErrDuplicateEmail
			case "users_mobile_key":
				return ErrDuplicateMobile
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByMobile retrieves a user by their mobile number
func (r *userRepository) FindByMobile(ctx context.Context, mobile string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE mobile = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, mobile))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, the service decides
		}
		return nil, fmt.Errorf("failed to find user by mobile: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindByEmailOrMobile returns every user holding either the email or the mobile.
// Up to two rows can match when each value belongs to a different account.
func (r *userRepository) FindByEmailOrMobile(ctx context.Context, email, mobile string) ([]model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR mobile = $2`
	rows, err := r.db.Query(ctx, sql, email, mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by email or mobile: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Mobile, &user.Address,
		&user.PasswordHash, &user.Role, &user.DOB, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}
