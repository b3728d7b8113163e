package domain

import "errors"

var (
	ErrUnknownDenomination = errors.New("unknown coin denomination")
	ErrGameNotFound        = errors.New("game not found")
	ErrTooManyGames        = errors.New("too many active games")
)
