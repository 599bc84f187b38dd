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

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) (string, error)
	GetById(ctx context.Context, accountID string) (*models.Account, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Account, error)
	ListAll(ctx context.Context) ([]*models.Account, error)
	SetAutoPause(ctx context.Context, accountID string, enabled bool) error

	UpsertMember(ctx context.Context, m *models.AccountUser) error
	GetMemberRole(ctx context.Context, accountID, userID string) (string, error)
	ListMembers(ctx context.Context, accountID string) ([]*models.Membership, error)
}

type AccountRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewAccountRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *AccountRepo {
	return &AccountRepo{
		db:     db,
		getter: c,
	}
}

func (r *AccountRepo) Create(ctx context.Context, account *models.Account) (string, error) {
	const op = "account_repo.Create"

	query := `
		INSERT INTO accounts (id, name, google_customer_id, auto_pause_enabled, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id;
	`

	var accountID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, account.ID, account.Name, account.GoogleCustomerID, account.AutoPauseEnabled).Scan(&accountID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && string(pgErr.Code) == uniqueViolationCode {
			return "", ErrAccountExists
		}
		return "", lib.Err(op, err)
	}

	return accountID, nil
}

func (r *AccountRepo) GetById(ctx context.Context, accountID string) (*models.Account, error) {
	const op = "account_repo.GetById"

	query := `
		SELECT id, name, google_customer_id, auto_pause_enabled, created_at
		FROM accounts
		WHERE id = $1;
	`

	var account models.Account
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &account, query, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &account, nil
}

func (r *AccountRepo) ListForUser(ctx context.Context, userID string) ([]*models.Account, error) {
	const op = "account_repo.ListForUser"

	query := `
		SELECT a.id, a.name, a.google_customer_id, a.auto_pause_enabled, a.created_at
		FROM accounts a
		JOIN account_users au ON au.account_id = a.id
		WHERE au.user_id = $1
		ORDER BY a.created_at;
	`

	var accounts []*models.Account
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &accounts, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Account{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return accounts, nil
}

func (r *AccountRepo) ListAll(ctx context.Context) ([]*models.Account, error) {
	const op = "account_repo.ListAll"

	query := `
		SELECT id, name, google_customer_id, auto_pause_enabled, created_at
		FROM accounts
		ORDER BY created_at;
	`

	var accounts []*models.Account
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &accounts, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Account{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return accounts, nil
}

func (r *AccountRepo) SetAutoPause(ctx context.Context, accountID string, enabled bool) error {
	const op = "account_repo.SetAutoPause"

	query := `UPDATE accounts SET auto_pause_enabled = $1 WHERE id = $2`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, enabled, accountID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *AccountRepo) UpsertMember(ctx context.Context, m *models.AccountUser) error {
	const op = "account_repo.UpsertMember"

	query := `
		INSERT INTO account_users (account_id, user_id, role, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (account_id, user_id) DO UPDATE SET
			role = EXCLUDED.role;
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, m.AccountID, m.UserID, m.Role)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *AccountRepo) GetMemberRole(ctx context.Context, accountID, userID string) (string, error) {
	const op = "account_repo.GetMemberRole"

	query := `
		SELECT role
		FROM account_users
		WHERE account_id = $1 AND user_id = $2;
	`

	var role string
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &role, query, accountID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", lib.Err(op, err)
	}

	return role, nil
}

func (r *AccountRepo) ListMembers(ctx context.Context, accountID string) ([]*models.Membership, error) {
	const op = "account_repo.ListMembers"

	query := `
		SELECT au.user_id, u.email, u.name, au.role, u.is_active
		FROM account_users au
		JOIN users u ON u.id = au.user_id
		WHERE au.account_id = $1
		ORDER BY au.created_at;
	`

	var members []*models.Membership
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &members, query, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Membership{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return members, nil
}
