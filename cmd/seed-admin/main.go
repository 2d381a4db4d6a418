// Command seed-admin bootstraps the first administrator account so the API
// has someone able to log in and register the remaining users.
package main

import (
	"context"
	"flag"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/infrastructure/config"
	mongodb "github.com/fleetledger/fleetledger/internal/infrastructure/db/mongo"
	"github.com/fleetledger/fleetledger/pkg/logger"
)

func main() {
	nome := flag.String("nome", "Administrador", "display name for the admin account")
	email := flag.String("email", "admin@fleetledger.com", "login email")
	senha := flag.String("senha", "", "initial password (required, min 6 characters)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic("config: " + err.Error())
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if len(*senha) < 6 {
		log.Fatal().Msg("-senha is required and must have at least 6 characters")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	if existing, err := repo.FindByEmail(ctx, *email); err == nil && existing != nil {
		log.Info().Str("email", *email).Msg("admin account already exists, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	user, err := repo.Create(ctx, &domain.User{
		Nome:      *nome,
		Email:     *email,
		SenhaHash: string(hash),
		Ativo:     true,
		IsAdmin:   true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Str("id", user.ID).Str("email", user.Email).Msg("admin account created")
}
