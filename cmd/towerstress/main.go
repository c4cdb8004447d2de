package main

import (
	"log/slog"

	"github.com/joho/godotenv"

	"towerstress/internal/logging"
)

func main() {
	// Optional .env for local overrides (SEED, LOG_LEVEL); missing file is fine.
	_ = godotenv.Load()

	slog.SetDefault(logging.New())
	Execute()
}
