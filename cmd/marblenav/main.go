package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"marblenav/internal/config"
	"marblenav/internal/game"
)

func main() {
	configPath := flag.String("config", "marblenav.yaml", "path to the YAML config file")
	levelPath := flag.String("level", "", "level file to load instead of the configured one")
	flag.Parse()

	// Paths given on the command line are relative to where we were started.
	if explicit("config") {
		*configPath, _ = filepath.Abs(*configPath)
	}
	if *levelPath != "" {
		*levelPath, _ = filepath.Abs(*levelPath)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *levelPath != "" {
		cfg.Level = *levelPath
	}

	g := game.New(cfg, log.Default())
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}

func explicit(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
