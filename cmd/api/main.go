package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/foremanb/socialnet/backend/internal/server"
)

func main() {
	srv := server.NewServer()

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
