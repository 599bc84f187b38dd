package account

import (
	"context"

	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/copp1723/lane-google-sub002/internal/service"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AccountProvider
type AccountProvider interface {
	Create(ctx context.Context, account *models.Account) (string, error)
	GetById(ctx context.Context, accountID string) (*models.Account, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Account, error)
	SetAutoPause(ctx context.Context, accountID string, enabled bool) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MemberProvider
type MemberProvider interface {
	UpsertMember(ctx context.Context, m *models.AccountUser) error
	GetMemberRole(ctx context.Context, accountID, userID string) (string, error)
	ListMembers(ctx context.Context, accountID string) ([]*models.Membership, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserGetter
type UserGetter interface {
	GetById(ctx context.Context, userID string) (*models.User, error)
}

type AccountService struct {
	accounts AccountProvider
	members  MemberProvider
	users    UserGetter
	trm      service.TransactionManager
}

func NewAccountService(
	trm service.TransactionManager,
	accounts AccountProvider,
	members MemberProvider,
	users UserGetter,
) *AccountService {
	return &AccountService{
		accounts: accounts,
		members:  members,
		users:    users,
		trm:      trm,
	}
}

// Create registers an account and makes the creator its owner.
func (s *AccountService) Create(ctx context.Context, callerID, name, customerID string) (*api.AccountSchema, error) {
	resp := &api.AccountSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		account := &models.Account{
			ID:               uuid.NewString(),
			Name:             name,
			GoogleCustomerID: customerID,
			AutoPauseEnabled: true,
		}

		accountID, err := s.accounts.Create(ctx, account)
		if err != nil {
			return err
		}

		owner := &models.AccountUser{
			AccountID: accountID,
			UserID:    callerID,
			Role:      service.RoleOwner,
		}
		if err := s.members.UpsertMember(ctx, owner); err != nil {
			return err
		}

		caller, err := s.users.GetById(ctx, callerID)
		if err != nil {
			return err
		}

		resp.AccountID = accountID
		resp.Name = account.Name
		resp.GoogleCustomerID = account.GoogleCustomerID
		resp.AutoPauseEnabled = account.AutoPauseEnabled
		resp.Members = []api.AccountMember{{
			UserID:   caller.ID,
			Email:    caller.Email,
			Name:     caller.Name,
			Role:     service.RoleOwner,
			IsActive: caller.IsActive,
		}}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *AccountService) Get(ctx context.Context, callerID, accountID string) (*api.AccountSchema, error) {
	if _, err := s.requireRole(ctx, accountID, callerID, service.RoleViewer); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetById(ctx, accountID)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListMembers(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resp := &api.AccountSchema{
		AccountID:        account.ID,
		Name:             account.Name,
		GoogleCustomerID: account.GoogleCustomerID,
		AutoPauseEnabled: account.AutoPauseEnabled,
		Members:          make([]api.AccountMember, 0, len(members)),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, api.AccountMember{
			UserID:   m.UserID,
			Email:    m.Email,
			Name:     m.Name,
			Role:     m.Role,
			IsActive: m.IsActive,
		})
	}

	return resp, nil
}

func (s *AccountService) ListForUser(ctx context.Context, callerID string) ([]api.AccountSchema, error) {
	accounts, err := s.accounts.ListForUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	resp := make([]api.AccountSchema, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, api.AccountSchema{
			AccountID:        a.ID,
			Name:             a.Name,
			GoogleCustomerID: a.GoogleCustomerID,
			AutoPauseEnabled: a.AutoPauseEnabled,
		})
	}

	return resp, nil
}

// SetMemberRole adds a user to the account or changes their role.
// Only admins and owners manage membership, and nobody hands out a role
// above their own.
func (s *AccountService) SetMemberRole(ctx context.Context, callerID, accountID, userID, role string) (*api.AccountMember, error) {
	callerRole, err := s.requireRole(ctx, accountID, callerID, service.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if !service.RoleAtLeast(callerRole, role) {
		return nil, service.ErrForbidden
	}

	user, err := s.users.GetById(ctx, userID)
	if err != nil {
		return nil, err
	}

	member := &models.AccountUser{
		AccountID: accountID,
		UserID:    userID,
		Role:      role,
	}
	if err := s.members.UpsertMember(ctx, member); err != nil {
		return nil, err
	}

	return &api.AccountMember{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     role,
		IsActive: user.IsActive,
	}, nil
}

func (s *AccountService) SetAutoPause(ctx context.Context, callerID, accountID string, enabled bool) error {
	if _, err := s.requireRole(ctx, accountID, callerID, service.RoleAdmin); err != nil {
		return err
	}
	return s.accounts.SetAutoPause(ctx, accountID, enabled)
}

func (s *AccountService) requireRole(ctx context.Context, accountID, userID, min string) (string, error) {
	role, err := s.members.GetMemberRole(ctx, accountID, userID)
	if err != nil {
		return "", err
	}
	if !service.RoleAtLeast(role, min) {
		return "", service.ErrForbidden
	}
	return role, nil
}
