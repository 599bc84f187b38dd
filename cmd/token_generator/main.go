package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// makeToken mints a long-lived JWT for local API poking.
func makeToken(secret, userID string, ttl time.Duration) string {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	})

	s, err := t.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return s
}

func main() {
	_ = godotenv.Load()

	userID := flag.String("user", "", "user id to embed in the token")
	ttl := flag.Duration("ttl", 365*24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: token_generator -user <user-id> [-ttl 24h]")
		os.Exit(2)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(2)
	}

	fmt.Println("TOKEN=" + makeToken(secret, *userID, *ttl))
}
