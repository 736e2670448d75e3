package domain

import "errors"

var (
	ErrNoActiveGame     = errors.New("no active game selected")
	ErrNoPlayerSelected = errors.New("no player selected")
	ErrEmptyName        = errors.New("name must not be empty")
	ErrInvalidDealCount = errors.New("deal count must be at least 1")
	ErrGameNotFound     = errors.New("game not found")
)
