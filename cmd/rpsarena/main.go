package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/vytor/rpsarena/internal/config"
	"github.com/vytor/rpsarena/internal/console"
	"github.com/vytor/rpsarena/internal/db"
	"github.com/vytor/rpsarena/internal/game"
	"github.com/vytor/rpsarena/internal/logger"
	"github.com/vytor/rpsarena/internal/menu"
	"github.com/vytor/rpsarena/internal/repository"
	"github.com/vytor/rpsarena/internal/repository/jsonfile"
	"github.com/vytor/rpsarena/internal/repository/sqlite"
	"github.com/vytor/rpsarena/internal/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration:\n%v\n", err)
		return 1
	}

	if err := jsonfile.EnsureDir(cfg.SaveDir); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	// Initialize logger
	log, closeLog, err := logger.OpenFile(cfg.LogFile, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer closeLog()
	logger.SetDefault(log)
	ctx := logger.NewContext(context.Background(), log)

	log.Info("rpsarena starting")
	log.Debug("save_dir=%s", cfg.SaveDir)
	log.Debug("history_db=%s", cfg.HistoryDB)
	log.Debug("color=%s", cfg.Color)
	log.Debug("history_limit=%d", cfg.HistoryLimit)

	support := console.DetectColor(cfg.Color, os.Stdout)
	con := console.New(os.Stdin, colorable.NewColorableStdout(), support)

	// Match history is optional
	var historyRepo repository.HistoryRepository
	if cfg.HistoryDB != "" {
		database, err := db.Open(ctx, cfg.HistoryDB)
		if err != nil {
			log.Error("match history disabled: %v", err)
			con.Subtle("Match history is unavailable this session.")
		} else {
			defer func() {
				log.Debug("closing database connection")
				database.Close()
			}()
			historyRepo = sqlite.NewHistoryRepository(database.DB)
		}
	}

	scoreboardService := services.NewScoreboardService(jsonfile.NewScoreboardRepository(cfg.SaveDir))
	saveService := services.NewSaveService(jsonfile.NewSaveRepository(cfg.SaveDir), scoreboardService)
	historyService := services.NewHistoryService(historyRepo)

	driver := game.NewDriver(con, scoreboardService, saveService, historyService)
	err = menu.New(con, driver, scoreboardService, saveService, historyService, cfg.HistoryLimit).Run(ctx)
	if errors.Is(err, console.ErrInputClosed) {
		log.Warn("input closed, exiting")
		return 1
	}
	if err != nil {
		log.Error("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	log.Info("rpsarena exiting")
	return 0
}
