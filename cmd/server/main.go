package main

import (
	"fmt"
	"log"

	"ltip-labweb/internal/config"
	"ltip-labweb/internal/database"
	"ltip-labweb/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DatabaseURL)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
