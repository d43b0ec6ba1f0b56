package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound      = errors.New("game not found")
	ErrGameComplete      = errors.New("game is already complete")
	ErrInvalidBoard      = errors.New("invalid board configuration")
	ErrCellOutOfBounds   = errors.New("cell is out of bounds")
	ErrCellAlreadyPlayed = errors.New("cell has already been revealed")
	ErrCellFlagged       = errors.New("cell is flagged")
	ErrCellNotFlagged    = errors.New("cell is not flagged")

	// Knowledge errors
	ErrKnowledgeNotFound     = errors.New("knowledge state not found")
	ErrInconsistentKnowledge = errors.New("knowledge base is inconsistent")
)
