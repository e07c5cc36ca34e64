package main

import (
	"cvgen_backend/internal/app"
	"cvgen_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited with error", "error", err.Error())
	}
}
