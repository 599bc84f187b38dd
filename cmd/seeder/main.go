package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/models"
	repo "github.com/copp1723/lane-google-sub002/internal/repository"
	"github.com/copp1723/lane-google-sub002/internal/service"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo workspace: two users, one linked account and a month of
// spend history so the pacing and performance dashboards have data to show.
func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dsn := os.Getenv("DATABASE_URL")
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	users := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	accounts := repo.NewAccountRepo(db, trmsqlx.DefaultCtxGetter)
	campaigns := repo.NewCampaignRepo(db, trmsqlx.DefaultCtxGetter)
	spends := repo.NewSpendRepo(db, trmsqlx.DefaultCtxGetter)

	ownerID, err := seedUser(ctx, users, "demo@lane-google.app", "Demo Owner", "password123")
	if err != nil {
		log.Error("failed to seed owner", sl.Err(err))
		os.Exit(1)
	}
	analystID, err := seedUser(ctx, users, "analyst@lane-google.app", "Demo Analyst", "password123")
	if err != nil {
		log.Error("failed to seed analyst", sl.Err(err))
		os.Exit(1)
	}

	accountID, err := accounts.Create(ctx, &models.Account{
		ID:               uuid.NewString(),
		Name:             "Acme Motors",
		GoogleCustomerID: "1234567890",
		AutoPauseEnabled: true,
	})
	if err != nil {
		log.Error("failed to seed account", sl.Err(err))
		os.Exit(1)
	}

	members := []*models.AccountUser{
		{AccountID: accountID, UserID: ownerID, Role: service.RoleOwner},
		{AccountID: accountID, UserID: analystID, Role: service.RoleAnalyst},
	}
	for _, m := range members {
		if err := accounts.UpsertMember(ctx, m); err != nil {
			log.Error("failed to seed member", sl.Err(err))
			os.Exit(1)
		}
	}

	externalID := "2001"
	seeded := []*models.Campaign{
		{
			ID:            uuid.NewString(),
			AccountID:     accountID,
			ExternalID:    &externalID,
			Name:          "Brand Search",
			Objective:     "leads",
			Channel:       "search",
			Status:        "active",
			MonthlyBudget: decimalPtr("3000"),
			CreatedBy:     ownerID,
		},
		{
			ID:        uuid.NewString(),
			AccountID: accountID,
			Name:      "Spring Display",
			Objective: "awareness",
			Channel:   "display",
			Status:    "draft",
			CreatedBy: ownerID,
		},
	}

	for _, c := range seeded {
		if _, err := campaigns.Create(ctx, c); err != nil {
			log.Error("failed to seed campaign", sl.Err(err))
			os.Exit(1)
		}
	}

	// two weeks of steady spend on the active campaign
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 1; i <= 14; i++ {
		day := today.AddDate(0, 0, -i)
		snapshot := &models.SpendSnapshot{
			CampaignID:  seeded[0].ID,
			Day:         day,
			Spend:       decimal.NewFromInt(95),
			Impressions: 12000,
			Clicks:      240,
			Conversions: 12,
		}
		if err := spends.Upsert(ctx, snapshot); err != nil {
			log.Error("failed to seed spend", sl.Err(err))
			os.Exit(1)
		}
	}

	fmt.Println("seeded account:", accountID)
	fmt.Println("owner login:    demo@lane-google.app / password123")
	fmt.Println("analyst login:  analyst@lane-google.app / password123")
}

func seedUser(ctx context.Context, users *repo.UserRepo, email, name, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return users.Create(ctx, &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		IsActive:     true,
	})
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
