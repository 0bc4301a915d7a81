package main

import (
	"log"

	"github.com/byteKumar/pepperuni/internal/shared/config"
	"github.com/byteKumar/pepperuni/internal/shared/server"
)

func main() {
	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
