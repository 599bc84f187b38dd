package models

import "time"

type Conversation struct {
	ID        string     `db:"id"`
	AccountID string     `db:"account_id"`
	CreatedBy string     `db:"created_by"`
	Title     string     `db:"title"`
	CreatedAt *time.Time `db:"created_at"`
}

type ConversationMessage struct {
	ID             string     `db:"id"`
	ConversationID string     `db:"conversation_id"`
	Role           string     `db:"role"`
	Content        string     `db:"content"`
	CreatedAt      *time.Time `db:"created_at"`
}

// Brief is the structured campaign summary extracted from a conversation.
type Brief struct {
	ID             string     `db:"id"`
	ConversationID string     `db:"conversation_id"`
	AccountID      string     `db:"account_id"`
	Objective      string     `db:"objective"`
	Audience       string     `db:"audience"`
	MonthlyBudget  string     `db:"monthly_budget"`
	Channels       string     `db:"channels"`
	Timeline       string     `db:"timeline"`
	KeyMessages    string     `db:"key_messages"`
	CreatedAt      *time.Time `db:"created_at"`
}
