package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rocketscienceinc/inarow/internal/board"
	"github.com/rocketscienceinc/inarow/internal/config"
	"github.com/rocketscienceinc/inarow/internal/engine"
	"github.com/rocketscienceinc/inarow/internal/repository"
	"github.com/rocketscienceinc/inarow/internal/repository/storage"
	"github.com/rocketscienceinc/inarow/internal/strategy"
	"github.com/rocketscienceinc/inarow/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

const customDifficulty = "custom"

// RunApp - plays one match between the configured players.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	b, err := board.New(conf.Board.Size, conf.Board.WinCondition, conf.Board.Is3D)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	x, err := newPlayer(board.X, conf.Players.X)
	if err != nil {
		return fmt.Errorf("could not create player X: %w", err)
	}

	o, err := newPlayer(board.O, conf.Players.O)
	if err != nil {
		return fmt.Errorf("could not create player O: %w", err)
	}

	var cache repository.MoveCache
	if conf.MoveCache.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		cache = repository.NewMoveCache(redisStorage, conf.MoveCache.TTL)
	}

	runner := usecase.NewMatchRunner(logger, cache)

	log.Info("Starting match",
		"size", b.Size(), "winCondition", b.WinCondition(), "is3D", b.Is3D(),
		"x", conf.Players.X.Strategy, "o", conf.Players.O.Strategy,
		"moveCache", conf.MoveCache.Enabled)

	match, err := runner.Play(ctx, b, x, o)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	log.Info("Match result", "id", match.ID, "status", match.Status, "winner", match.Winner, "board", b.Key())

	return nil
}

func newPlayer(mark board.Mark, conf config.Player) (strategy.Strategy, error) {
	cfg := strategy.Config{
		Kind:     strategy.Kind(strings.ToLower(strings.TrimSpace(conf.Strategy))),
		Mark:     mark,
		MaxDepth: conf.MaxDepth,
		Pruning:  conf.Pruning,
		Seed:     conf.Seed,
	}

	if cfg.Kind == strategy.KindSearch && !strings.EqualFold(conf.Difficulty, customDifficulty) {
		difficulty, err := engine.ParseDifficulty(conf.Difficulty)
		if err != nil {
			return nil, err
		}

		cfg.Difficulty = difficulty
	}

	return strategy.New(cfg)
}
