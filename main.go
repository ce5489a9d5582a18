package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/DeniseL168/FinanceApp/internal/config"
	"github.com/DeniseL168/FinanceApp/internal/database"
	"github.com/DeniseL168/FinanceApp/internal/router"
	"github.com/DeniseL168/FinanceApp/internal/store"
	"github.com/DeniseL168/FinanceApp/internal/token"

	"github.com/joho/godotenv"
)

func main() {
	// local .env overrides, if present
	_ = godotenv.Load()

	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// init document store
	db, err := database.Init(cfg.Mongo)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer func() {
		if err := database.Disconnect(db); err != nil {
			log.Printf("disconnect database: %v", err)
		}
	}()

	// token service with its revocation list
	revocations := store.NewRevocations(db)
	ttl := time.Duration(cfg.JWT.ExpireMinutes) * time.Minute
	tokens := token.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, ttl, revocations)

	// periodic revocation-list pruning; revoke also prunes lazily, so
	// this sweep is hygiene, not correctness
	go prunerLoop(tokens)

	// setup router
	r := router.SetupRouter(cfg, db, tokens)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func prunerLoop(tokens *token.Service) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := tokens.PruneExpired(ctx); err != nil {
			log.Printf("prune revocations: %v", err)
		}
		cancel()
	}
}
