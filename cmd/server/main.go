package main

import (
	"log"
	"net/http"

	"pass-the-page/internal/config"
	"pass-the-page/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	cfg := config.Load()

	srv := server.New(cfg)
	addr := ":" + cfg.Port
	log.Printf("pass-the-page server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
