package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/plateforme/services-api/config"
	"github.com/plateforme/services-api/pkg/helpers"
)

// Seeds a superuser account. Admins have no profile row; they are created
// here rather than through the registration endpoints.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@example.com")
	password := envOr("ADMIN_PASSWORD", "admin12345")

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, is_superuser)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, is_superuser = TRUE
		RETURNING id
	`, username, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%d username=%s email=%s\n", id, username, email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
