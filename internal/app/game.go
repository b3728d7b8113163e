package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/randomtoy/change-game/internal/domain"
	"github.com/randomtoy/change-game/internal/ports"
)

// GameView is the application-level output for one game (no HTTP types).
type GameView struct {
	ID string
	domain.Snapshot
}

// GameService owns exact-change games and forwards player actions to them.
type GameService struct {
	store   ports.GameStore
	catalog ports.CoinCatalog
	rng     domain.RNG
	logger  *slog.Logger
}

func NewGameService(store ports.GameStore, catalog ports.CoinCatalog, rng domain.RNG, logger *slog.Logger) *GameService {
	return &GameService{
		store:   store,
		catalog: catalog,
		rng:     rng,
		logger:  logger,
	}
}

// NewGame starts a game with a random target.
func (s *GameService) NewGame(ctx context.Context) (GameView, error) {
	g := domain.NewGame(s.rng)
	id, err := s.store.Create(ctx, g)
	if err != nil {
		return GameView{}, fmt.Errorf("create game: %w", err)
	}
	s.logger.DebugContext(ctx, "game started", "game_id", id, "target_cents", g.Target())
	return GameView{ID: id, Snapshot: g.Snapshot()}, nil
}

func (s *GameService) Game(ctx context.Context, id string) (GameView, error) {
	snap, err := s.store.Get(ctx, id)
	if err != nil {
		return GameView{}, fmt.Errorf("get game: %w", err)
	}
	return GameView{ID: id, Snapshot: snap}, nil
}

func (s *GameService) SelectCoin(ctx context.Context, id string, d domain.Denomination) (GameView, error) {
	if !d.Valid() {
		return GameView{}, domain.ErrUnknownDenomination
	}
	return s.update(ctx, id, "select coin", func(g *domain.Game) { g.SelectCoin(d) })
}

func (s *GameService) RemoveCoin(ctx context.Context, id string, d domain.Denomination) (GameView, error) {
	if !d.Valid() {
		return GameView{}, domain.ErrUnknownDenomination
	}
	return s.update(ctx, id, "remove coin", func(g *domain.Game) { g.RemoveCoin(d) })
}

func (s *GameService) ClearSelection(ctx context.Context, id string) (GameView, error) {
	return s.update(ctx, id, "clear selection", (*domain.Game).ClearSelection)
}

func (s *GameService) CheckAnswer(ctx context.Context, id string) (GameView, error) {
	view, err := s.update(ctx, id, "check answer", func(g *domain.Game) { g.CheckAnswer() })
	if err != nil {
		return GameView{}, err
	}
	s.logger.DebugContext(ctx, "answer checked",
		"game_id", id,
		"target_cents", view.Target,
		"total_cents", view.Total,
		"feedback", view.Feedback.String(),
	)
	return view, nil
}

// Reset starts a new round in an existing game.
func (s *GameService) Reset(ctx context.Context, id string) (GameView, error) {
	return s.update(ctx, id, "reset game", func(g *domain.Game) { g.Reset(s.rng) })
}

func (s *GameService) EndGame(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("end game: %w", err)
	}
	return nil
}

func (s *GameService) Coins(ctx context.Context) ([]ports.Coin, error) {
	coins, err := s.catalog.Coins(ctx)
	if err != nil {
		return nil, fmt.Errorf("load coins: %w", err)
	}
	return coins, nil
}

func (s *GameService) update(ctx context.Context, id, op string, fn func(g *domain.Game)) (GameView, error) {
	snap, err := s.store.Update(ctx, id, fn)
	if err != nil {
		return GameView{}, fmt.Errorf("%s: %w", op, err)
	}
	return GameView{ID: id, Snapshot: snap}, nil
}
