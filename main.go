package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rghosh/devnotes/cmd"
)

func main() {
	// A .env in the working directory is a convenience for local API keys;
	// absence is not an error.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
