package main

import (
	"github.com/joho/godotenv"

	"hrconsole/internal/app/server"
)

func main() {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()
	server.Run()
}
