package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Garsondee/Peel-Arena/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "optional YAML tuning file")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time based)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	g, err := game.New(cfg, seed, logger)
	if err != nil {
		logger.Error("start game", "err", err)
		os.Exit(1)
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("99 vs 1: Peel Arena")
	ebiten.SetWindowSize(w*3/4, h*3/4)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("run game", "err", err)
		os.Exit(1)
	}
}
