package repo

import (
	"context"
	"database/sql"
	"errors"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/copp1723/lane-google-sub002/internal/lib"
	"github.com/copp1723/lane-google-sub002/internal/models"
	"github.com/jmoiron/sqlx"
)

type ConversationRepository interface {
	Create(ctx context.Context, conv *models.Conversation) (string, error)
	GetById(ctx context.Context, convID string) (*models.Conversation, error)
	AppendMessage(ctx context.Context, msg *models.ConversationMessage) (string, error)
	ListMessages(ctx context.Context, convID string) ([]*models.ConversationMessage, error)
}

type ConversationRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewConversationRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ConversationRepo {
	return &ConversationRepo{
		db:     db,
		getter: c,
	}
}

func (r *ConversationRepo) Create(ctx context.Context, conv *models.Conversation) (string, error) {
	const op = "conversation_repo.Create"

	query := `
		INSERT INTO conversations (id, account_id, created_by, title, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id;
	`

	var convID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, conv.ID, conv.AccountID, conv.CreatedBy, conv.Title).Scan(&convID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return convID, nil
}

func (r *ConversationRepo) GetById(ctx context.Context, convID string) (*models.Conversation, error) {
	const op = "conversation_repo.GetById"

	query := `
		SELECT id, account_id, created_by, title, created_at
		FROM conversations
		WHERE id = $1;
	`

	var conv models.Conversation
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &conv, query, convID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &conv, nil
}

func (r *ConversationRepo) AppendMessage(ctx context.Context, msg *models.ConversationMessage) (string, error) {
	const op = "conversation_repo.AppendMessage"

	query := `
		INSERT INTO conversation_messages (id, conversation_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id;
	`

	var msgID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, msg.ID, msg.ConversationID, msg.Role, msg.Content).Scan(&msgID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return msgID, nil
}

func (r *ConversationRepo) ListMessages(ctx context.Context, convID string) ([]*models.ConversationMessage, error) {
	const op = "conversation_repo.ListMessages"

	query := `
		SELECT id, conversation_id, role, content, created_at
		FROM conversation_messages
		WHERE conversation_id = $1
		ORDER BY created_at;
	`

	var messages []*models.ConversationMessage
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &messages, query, convID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.ConversationMessage{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return messages, nil
}
