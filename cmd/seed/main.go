// Command seed creates the initial admin account and a few sample catalog
// rows for local development. It is idempotent: rows that already exist
// are left alone.
//
// Flags:
//
//	--admin-name      admin account name (default: admin)
//	--admin-password  admin account password (default: admin)
//	--samples         also insert sample catalog rows (default: false)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/arlearn/admin-backend/internal/adapter/postgres"
	"github.com/arlearn/admin-backend/internal/adapter/postgres/account"
	"github.com/arlearn/admin-backend/internal/adapter/postgres/armodel"
	"github.com/arlearn/admin-backend/internal/adapter/postgres/quiz"
	"github.com/arlearn/admin-backend/internal/app"
	"github.com/arlearn/admin-backend/internal/config"
	"github.com/arlearn/admin-backend/internal/domain"
)

func main() {
	adminName := flag.String("admin-name", "admin", "admin account name")
	adminPassword := flag.String("admin-password", "admin", "admin account password")
	samples := flag.Bool("samples", false, "also insert sample catalog rows")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			logger.Error("run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	accounts := account.New(pool)

	if err := seedAdmin(ctx, accounts, *adminName, *adminPassword); err != nil {
		logger.Error("seed admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("admin account ready", slog.String("name", *adminName))

	if *samples {
		if err := seedSamples(ctx, armodel.New(pool), quiz.New(pool)); err != nil {
			logger.Error("seed sample rows", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("sample catalog rows inserted")
	}
}

// seedAdmin creates the admin account unless one with the same name exists.
func seedAdmin(ctx context.Context, accounts *account.Repo, name, password string) error {
	_, err := accounts.GetByName(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	_, err = accounts.Create(ctx, &domain.Account{Name: name, Password: password})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil
	}
	return err
}

// seedSamples inserts one model description and one quiz question so the
// dashboard has something to show on a fresh database.
func seedSamples(ctx context.Context, models *armodel.Repo, questions *quiz.Repo) error {
	count, err := models.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		_, err = models.Create(ctx, &domain.ARModel{
			Name:        "Apple",
			Description: "A red apple model with a simple bite animation.",
		})
		if err != nil {
			return err
		}
	}

	count, err = questions.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		_, err = questions.Create(ctx, &domain.QuizQuestion{
			Question: "Which fruit keeps the doctor away?",
			OptionA:  "Apple",
			OptionB:  "Banana",
			OptionC:  "Cherry",
			OptionD:  "Durian",
			Answer:   domain.AnswerA,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
