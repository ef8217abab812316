package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/protlab/ssbrowse/internal/config"
	"github.com/protlab/ssbrowse/internal/database"
	"github.com/protlab/ssbrowse/internal/database/repository"
	"github.com/protlab/ssbrowse/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := database.SeedDemo(ctx, db); err != nil {
		log.Fatalf("seed dataset: %v", err)
	}

	repos := tui.Repos{
		Structures: repository.NewStructureRepo(db),
		Disulfides: repository.NewDisulfideRepo(db),
		Stats:      repository.NewStatsRepo(db),
	}

	p := tea.NewProgram(tui.New(ctx, cfg, repos, database.DefaultStructureID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
