// Command seed populates the database with a demo reader and a small
// starter catalog. It is idempotent: running it twice changes nothing.
package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"readin/cmd/api/infrastructure"
	"readin/internal/adapter/db/postgres"
	"readin/internal/config"
	bookdomain "readin/internal/domain/book"
	userdomain "readin/internal/domain/user"
	"readin/pkg/security"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@readin.local"
	demoPassword = "demo1234"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("seed complete")
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "."
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	l := zap.NewNop()

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := infrastructure.CloseDatabase(db); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	ctx := context.Background()
	users := postgres.NewUserRepoPG(db, l)
	books := postgres.NewBookRepoPG(db, l)

	// Demo user
	owner, err := users.GetByUsername(ctx, demoUsername)
	if err != nil {
		return err
	}
	if owner == nil {
		hash, err := security.HashPassword(demoPassword, cfg.Auth.BcryptCost)
		if err != nil {
			return err
		}
		id, err := users.Create(ctx, &userdomain.User{
			Username: demoUsername,
			Email:    demoEmail,
			Password: hash,
		})
		if err != nil {
			return err
		}
		owner = &userdomain.User{ID: id, Username: demoUsername, Email: demoEmail}
		log.Printf("created user %q (id=%d)", demoUsername, id)
	}

	// Starter catalog
	seedBooks := []bookdomain.Book{
		{Title: "Book 1", Author: "Author 1", UserID: owner.ID},
		{Title: "Book 2", Author: "Author 2", UserID: owner.ID},
	}

	existing, err := books.List(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, b := range existing {
		have[b.Title] = true
	}

	for i := range seedBooks {
		b := &seedBooks[i]
		if have[b.Title] {
			continue
		}
		id, err := books.Create(ctx, b)
		if err != nil {
			return err
		}
		log.Printf("created book %q by %q (id=%d)", b.Title, b.Author, id)
	}

	return nil
}
