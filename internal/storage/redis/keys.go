package redis

import (
	"fmt"

	"github.com/mcoot/minesweeper-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "msweep"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// knowledgeKey returns the Redis key for a game's knowledge snapshot
func knowledgeKey(id model.GameID) string {
	return fmt.Sprintf("%s:knowledge:%s", keyPrefix, id)
}

// gameIndexKey returns the Redis key for the SET of all game IDs
func gameIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
