package main

import (
	"fmt"
	"os"

	"taskboard/internal/api"
	"taskboard/internal/board"
	"taskboard/internal/cli"
	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/session"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Application.Verbose)

	// Local state: the stored session plus the cached board snapshot
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing local state: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	sessions := session.NewStore(repo)
	remote := api.NewClient(cfg, sessions, log)
	taskBoard := board.New(remote, repo, log)

	app := cli.NewApp(remote, sessions, taskBoard, cfg, log)
	root := cli.NewRootCommand(app, cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
