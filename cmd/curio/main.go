package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/curio-app/curio/internal/cli"
	"github.com/curio-app/curio/internal/config"
	"github.com/curio-app/curio/internal/controller"
	"github.com/curio-app/curio/internal/logging"
	"github.com/curio-app/curio/internal/repositories/collections"
	"github.com/curio-app/curio/internal/repositories/items"
	"github.com/curio-app/curio/internal/repositories/session"
	"github.com/curio-app/curio/internal/repositories/users"
	"github.com/curio-app/curio/internal/services"
	"github.com/curio-app/curio/internal/storage"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := storage.NewSQLiteStore(cfg.StoragePath)
	if err != nil {
		log.Fatalf("error opening store: %s", err.Error())
	}
	defer store.Close()

	userRepo := users.NewStoreRepository(store, logger)
	sessionRepo := session.NewStoreRepository(store, []byte(cfg.SessionSecret), logger)
	colRepo := collections.NewStoreRepository(store, logger)
	itemRepo := items.NewStoreRepository(store, logger)

	authService := services.NewAuthService(userRepo, sessionRepo, logger)
	collectionService := services.NewCollectionService(authService, colRepo, itemRepo, logger)
	itemService := services.NewItemService(authService, itemRepo, collectionService, logger)

	ctrl := controller.New(authService, collectionService, itemService, logger, cfg.SearchDebounce)

	app := cli.NewApp(ctrl)
	app.Run(context.Background())
}
