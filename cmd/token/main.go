// Command token mints a bearer token for local testing, signed with the
// JWT_SECRET the service is configured with.
package main

import (
	"flag"
	"fmt"

	"hotelbooking/internal/auth"
	"hotelbooking/internal/config"
	"hotelbooking/internal/logger"
)

func main() {
	customerID := flag.Int("customer", 1, "customer id")
	email := flag.String("email", "js@gmail.com", "customer email")
	role := flag.String("role", auth.RoleCustomer, "customer or admin")
	ttl := flag.Duration("ttl", auth.AccessTokenTTL, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	token, err := auth.GenerateToken(*customerID, *email, *role, cfg.JWTSecret, *ttl)
	if err != nil {
		logger.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
