package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/pawcare/pawcare-api/config"
	"github.com/pawcare/pawcare-api/pkg/helpers"
)

type seedUser struct {
	name     string
	email    string
	password string
	role     string
	phone    string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	users := []seedUser{
		{name: "Clinic Admin", email: "admin@pawcare.local", password: "admin123", role: "admin", phone: "555-0100"},
		{name: "Dr. Sarah Collins", email: "sarah.collins@pawcare.local", password: "vetpass123", role: "veterinarian", phone: "555-0101"},
		{name: "Dr. Miguel Ortega", email: "miguel.ortega@pawcare.local", password: "vetpass123", role: "veterinarian", phone: "555-0102"},
	}

	for _, u := range users {
		hash, err := helpers.HashPassword(u.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO users (name, email, password_hash, role, phone)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (LOWER(email)) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role
			RETURNING id
		`, u.name, helpers.LowerTrim(u.email), hash, u.role, u.phone).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.email, err)
		}
		fmt.Printf("seeded %s: id=%s email=%s password=%s\n", u.role, id, u.email, u.password)
	}
}
