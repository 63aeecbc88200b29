package main

import (
	"fmt"
	"log"
	"os"

	internalcli "github.com/themizzi/exercise-e2e/internal/cli"
	"github.com/themizzi/exercise-e2e/internal/config"
)

var version = "0.1.0"

func main() {
	// Load environment variables from the nearest .env file
	if !config.LoadDotEnv() {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := internalcli.NewApp(version, internalcli.LoadDeps)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
