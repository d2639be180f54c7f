package main

import (
	"fmt"
	"os"

	"punchcard/internal/api"
	"punchcard/internal/cli"
	"punchcard/internal/config"
	"punchcard/internal/logging"
)

func main() {
	// Load configuration with global flags winning over environment and file
	overrides := flagOverrides(os.Args[1:])
	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Diagnostics go to stderr so CSV piped from stdout stays clean
	logging.Setup(os.Stderr, cfg.Application.Verbose)

	loc, err := cfg.GetLocation()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving timezone: %v\n", err)
		os.Exit(1)
	}

	// Create the event log repository with dependency injection
	repo := config.CreateRepository(cfg)

	// Create API instance
	apiInstance := api.New(repo, loc)

	// Create the root command with the injected API
	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
