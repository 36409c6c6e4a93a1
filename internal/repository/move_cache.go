package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/board"
)

type MoveCache interface {
	Get(ctx context.Context, fingerprint, boardKey string) (board.Move, error)
	Set(ctx context.Context, fingerprint, boardKey string, move board.Move) error
}

type dbMoveCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveCache stores moves of deterministic strategies. A zero ttl keeps
// entries forever.
func NewMoveCache(client *redis.Client, ttl time.Duration) MoveCache {
	return &dbMoveCache{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMoveCache) Get(ctx context.Context, fingerprint, boardKey string) (board.Move, error) {
	response, err := that.client.Get(ctx, moveKey(fingerprint, boardKey)).Result()

	if errors.Is(err, redis.Nil) {
		return board.Move{}, apperror.ErrMoveNotCached
	}

	if err != nil {
		return board.Move{}, fmt.Errorf("failed to get move: %w", err)
	}

	var move board.Move
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return board.Move{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return move, nil
}

func (that *dbMoveCache) Set(ctx context.Context, fingerprint, boardKey string, move board.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, moveKey(fingerprint, boardKey), moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func moveKey(fingerprint, boardKey string) string {
	return "move:" + fingerprint + ":" + boardKey
}
