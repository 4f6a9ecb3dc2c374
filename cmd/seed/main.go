package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-todo-api/config"
	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/container"
	"github.com/oksasatya/go-todo-api/internal/domain/apperror"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// seed creates a demo account with a few todos. Running it twice is harmless.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.DBDriver == config.DriverMemory {
		log.Fatal("seeding the memory driver has no effect; set DB_DRIVER=postgres")
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)

	ctx := context.Background()
	ctr, err := container.Build(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialise dependencies: %v", err)
	}
	defer ctr.Close()

	email := getenv("SEED_EMAIL", "demo@example.com")
	password := getenv("SEED_PASSWORD", "password123")
	name := getenv("SEED_NAME", "Demo User")

	users := application.NewUserService(ctr.Repos.Users(nil), ctr.Hasher, ctr.JWT, logger)
	u, err := users.Create(ctx, email, password, &name)
	switch {
	case errors.Is(err, apperror.ErrConflict):
		fmt.Printf("user %s already exists, nothing to do\n", email)
		return
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s name=%s password=%s\n", u.ID, u.Email, name, password)

	todos := application.NewTodoService(ctr.Repos.Todos(nil), logger)
	for _, title := range []string{"Try the API", "Create your own todos", "Mark this one completed"} {
		t, err := todos.Create(ctx, u.ID, entity.NewTodo{Title: title})
		if err != nil {
			log.Fatalf("failed to seed todo %q: %v", title, err)
		}
		fmt.Printf("seeded todo: id=%d title=%q\n", t.ID, t.Title)
	}
}
