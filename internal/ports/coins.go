package ports

import (
	"context"

	"github.com/randomtoy/change-game/internal/domain"
)

// Coin is the display metadata of a denomination.
type Coin struct {
	Denomination domain.Denomination
	Name         string
	Plural       string
	Glyph        string
}

// CoinCatalog provides display metadata for every denomination.
type CoinCatalog interface {
	// Coins returns one entry per denomination in ascending value order.
	Coins(ctx context.Context) ([]Coin, error)
}
