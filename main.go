package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Maradon197/5MinuteChallenge-sub000/cmd"
)

func main() {
	// Optional .env for API keys and local overrides.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
