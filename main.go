package main

import (
	"log/slog"
	"os"

	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/server"
	"github.com/pterm/pterm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	ptermLogger := pterm.DefaultLogger.WithLevel(ptermLevel(cfg.LogLevel))
	logger := slog.New(pterm.NewSlogHandler(ptermLogger))
	slog.SetDefault(logger)

	pterm.DefaultHeader.Println("Blackjack")
	logger.Info("table rules",
		"decks", cfg.Rules.NumberOfDecks,
		"min_bet", cfg.Rules.MinBet,
		"dealer_hits_soft_17", cfg.Rules.DealerHitsSoft17,
	)

	s := server.NewServer(cfg, logger)
	if err := s.Start(cfg.Port); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
