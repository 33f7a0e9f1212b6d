package main

import (
	"fmt"
	"os"

	"timereport/internal/cli"
	"timereport/internal/config"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.LoadFromFile(config.DefaultConfigPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config file: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading environment: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
