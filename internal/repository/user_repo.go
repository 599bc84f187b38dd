package repo

import (
	"context"
	"database/sql"
	"errors"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/copp1723/lane-google-sub002/internal/lib"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetById(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (string, error) {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (id, email, name, password_hash, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id;
	`

	var userID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, user.ID, user.Email, user.Name, user.PasswordHash, user.IsActive).Scan(&userID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && string(pgErr.Code) == uniqueViolationCode {
			return "", ErrEmailExists
		}
		return "", lib.Err(op, err)
	}

	return userID, nil
}

func (r *UserRepo) GetById(ctx context.Context, userID string) (*models.User, error) {
	const op = "user_repo.GetById"

	query := `
		SELECT id, email, name, password_hash, is_active, created_at
		FROM users
		WHERE id = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "user_repo.GetByEmail"

	query := `
		SELECT id, email, name, password_hash, is_active, created_at
		FROM users
		WHERE email = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}
