// Command devtoken prints a signed bearer token for local testing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventhub-backend/internal/middleware"
	"eventhub-backend/internal/models"
)

func main() {
	uid := flag.String("uid", "", "user id (required)")
	role := flag.String("role", string(models.RoleOrganizer), "admin, organizer, supplier or attendee")
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "HS256 secret, defaults to $JWT_SECRET")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *uid == "" || *secret == "" {
		flag.Usage()
		os.Exit(2)
	}

	now := time.Now()
	tok, err := middleware.SignToken(*secret, *uid, models.ParseRole(*role), jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(*ttl)),
	})
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	fmt.Println(tok)
}
