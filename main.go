package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	switch command := os.Args[1]; command {
	case "version":
		fmt.Printf("bookcatalog %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve    Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  version  Print the build version\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from the environment and an optional .env file:\n")
	fmt.Fprintf(os.Stderr, "  PORT, HOST, DATABASE_URL, DATABASE_CONNECT_ATTEMPTS, DATABASE_CONNECT_BACKOFF,\n")
	fmt.Fprintf(os.Stderr, "  DATABASE_LOG_LEVEL, LOG_LEVEL, LOG_FORMAT, GIN_MODE, SHUTDOWN_TIMEOUT_IN_SECONDS\n")
}
