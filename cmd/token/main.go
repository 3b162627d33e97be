package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"notification-hub/auth"
	"notification-hub/domain"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// token prints a signed JWT for local testing of the websocket and REST API.
func main() {
	_ = godotenv.Load()

	user := flag.String("user", "", "User id carried by the token")
	roles := flag.String("roles", "", "Comma separated roles (STUDENT, COUNSELOR, ADMIN)")
	secret := flag.String("secret", "", "Signing secret, defaults to $JWT_SECRET")
	duration := flag.Duration("duration", 24*time.Hour, "Token lifetime")
	flag.Parse()

	if *secret == "" {
		*secret = os.Getenv("JWT_SECRET")
	}
	if *user == "" || *secret == "" {
		log.Fatal("both -user and a signing secret are required")
	}

	parsed := lo.FilterMap(strings.Split(*roles, ","), func(r string, _ int) (domain.Role, bool) {
		role := domain.Role(r).Normalize()
		return role, role != ""
	})

	token, err := auth.NewTokenManager(*secret, *duration).GenerateToken(domain.UserID(*user), parsed)
	if err != nil {
		log.Fatal("Error while signing token: ", err)
	}
	fmt.Println(token)
}
