package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/abhisek/coursegen/cmd"
)

func main() {
	// Optional .env file for provider keys. Missing file is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
