package main

import (
	"fmt"
	"log"
	"net/http"
	"team_word/internal/app"
	"team_word/internal/config"
	"team_word/internal/transport"
	"team_word/internal/web/components"
	"time"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	order, err := cfg.ClueOrder()
	if err != nil {
		log.Fatal(err)
	}

	components.Version = fmt.Sprintf("%d", time.Now().Unix())

	service := app.NewService(app.Options{
		ClueOrder:    order,
		Palette:      cfg.Teams.Palette,
		DefaultTeams: cfg.Teams.Defaults,
	})
	defer service.Shutdown()
	server := transport.NewServer(service, cfg.Puzzle.MaxUploadBytes)

	log.Printf("Server starting in %s mode on http://%s (clue order %s)\n", cfg.Server.Env, cfg.Addr(), order)
	if err := http.ListenAndServe(cfg.Addr(), server.Router); err != nil {
		log.Fatal(err)
	}
}
