package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staff-leave-portal/internal/adapter/repository/mysql"
	"staff-leave-portal/internal/config"
	"staff-leave-portal/internal/domain/user"
	"staff-leave-portal/internal/infrastructure/db"
	"staff-leave-portal/pkg/id"
)

// Creates the single principal account. Safe to run repeatedly: if a
// principal already exists nothing is written.
func main() {
	_ = godotenv.Load()

	email := strings.ToLower(strings.TrimSpace(os.Getenv("PRINCIPAL_EMAIL")))
	password := os.Getenv("PRINCIPAL_PASSWORD")
	name := strings.TrimSpace(os.Getenv("PRINCIPAL_NAME"))
	if email == "" || password == "" {
		log.Fatal("PRINCIPAL_EMAIL and PRINCIPAL_PASSWORD are required")
	}
	if name == "" {
		name = "Principal"
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&user.User{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	users := mysql.NewUserRepository(gdb)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if existing, err := users.GetPrincipal(ctx); err == nil {
		log.Printf("principal already provisioned: %s", existing.Email)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("query principal: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	acc := &user.User{
		UID:          id.NewID32(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     name,
		Department:   "Administration",
		Role:         user.RolePrincipal,
	}
	if err := users.Create(ctx, acc); err != nil {
		log.Fatalf("create principal: %v", err)
	}
	log.Printf("principal provisioned: %s (uid %s)", acc.Email, acc.UID)
}
