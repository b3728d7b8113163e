package app_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/randomtoy/change-game/internal/adapters/sessions"
	"github.com/randomtoy/change-game/internal/app"
	"github.com/randomtoy/change-game/internal/domain"
	"github.com/randomtoy/change-game/internal/ports"
)

type mockCatalog struct {
	coins []ports.Coin
	err   error
}

func (m *mockCatalog) Coins(_ context.Context) ([]ports.Coin, error) {
	return m.coins, m.err
}

type failingStore struct {
	ports.GameStore
	err error
}

func (f failingStore) Create(_ context.Context, _ *domain.Game) (string, error) {
	return "", f.err
}

type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

func newService(rng domain.RNG) *app.GameService {
	store := sessions.NewMemoryStore(time.Hour, 0)
	return app.NewGameService(store, &mockCatalog{}, rng, slog.Default())
}

func TestNewGame(t *testing.T) {
	svc := newService(fixedRNG{val: 36})

	view, err := svc.NewGame(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ID == "" {
		t.Fatal("expected game id")
	}
	if view.Target != 37 {
		t.Errorf("expected target 37, got %d", view.Target)
	}
	if view.Total != 0 || view.Status != domain.InProgress || view.Feedback != domain.FeedbackNone {
		t.Errorf("unexpected initial state: %+v", view.Snapshot)
	}
}

func TestPlay_ExactChangeWins(t *testing.T) {
	ctx := context.Background()
	svc := newService(fixedRNG{val: 36})
	view, _ := svc.NewGame(ctx)
	id := view.ID

	for _, d := range []domain.Denomination{domain.Quarter, domain.Dime, domain.Penny, domain.Penny} {
		if _, err := svc.SelectCoin(ctx, id, d); err != nil {
			t.Fatalf("select %s: %v", d, err)
		}
	}

	view, err := svc.CheckAnswer(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Total != 37 || view.Status != domain.Won || view.Feedback != domain.FeedbackCorrect {
		t.Errorf("expected win at 37, got %+v", view.Snapshot)
	}

	view, err = svc.SelectCoin(ctx, id, domain.Quarter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Total != 37 {
		t.Errorf("expected selection frozen after win, total %d", view.Total)
	}

	view, err = svc.Reset(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != domain.InProgress || view.Total != 0 {
		t.Errorf("expected fresh round, got %+v", view.Snapshot)
	}
}

func TestPlay_UnderAndClear(t *testing.T) {
	ctx := context.Background()
	svc := newService(fixedRNG{val: 9})
	view, _ := svc.NewGame(ctx)

	_, _ = svc.SelectCoin(ctx, view.ID, domain.Nickel)
	view, _ = svc.CheckAnswer(ctx, view.ID)
	if view.Feedback != domain.FeedbackAddMore || view.Status != domain.InProgress {
		t.Errorf("expected add_more in progress, got %+v", view.Snapshot)
	}

	view, _ = svc.RemoveCoin(ctx, view.ID, domain.Nickel)
	view, _ = svc.RemoveCoin(ctx, view.ID, domain.Nickel)
	if view.Total != 0 || view.Feedback != domain.FeedbackNone {
		t.Errorf("expected empty selection, got %+v", view.Snapshot)
	}

	_, _ = svc.SelectCoin(ctx, view.ID, domain.Quarter)
	view, err := svc.ClearSelection(ctx, view.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Total != 0 || view.Target != 10 {
		t.Errorf("expected cleared selection with target 10, got %+v", view.Snapshot)
	}
}

func TestUnknownGame(t *testing.T) {
	ctx := context.Background()
	svc := newService(fixedRNG{})

	calls := map[string]func() error{
		"get":    func() error { _, err := svc.Game(ctx, "nope"); return err },
		"select": func() error { _, err := svc.SelectCoin(ctx, "nope", domain.Dime); return err },
		"remove": func() error { _, err := svc.RemoveCoin(ctx, "nope", domain.Dime); return err },
		"clear":  func() error { _, err := svc.ClearSelection(ctx, "nope"); return err },
		"check":  func() error { _, err := svc.CheckAnswer(ctx, "nope"); return err },
		"reset":  func() error { _, err := svc.Reset(ctx, "nope"); return err },
		"end":    func() error { return svc.EndGame(ctx, "nope") },
	}
	for name, call := range calls {
		if err := call(); !errors.Is(err, domain.ErrGameNotFound) {
			t.Errorf("%s: expected ErrGameNotFound, got %v", name, err)
		}
	}
}

func TestSelectCoin_InvalidDenomination(t *testing.T) {
	ctx := context.Background()
	svc := newService(fixedRNG{})
	view, _ := svc.NewGame(ctx)

	if _, err := svc.SelectCoin(ctx, view.ID, domain.Denomination(7)); !errors.Is(err, domain.ErrUnknownDenomination) {
		t.Errorf("expected ErrUnknownDenomination, got %v", err)
	}
}

func TestEndGame(t *testing.T) {
	ctx := context.Background()
	svc := newService(fixedRNG{})
	view, _ := svc.NewGame(ctx)

	if err := svc.EndGame(ctx, view.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Game(ctx, view.ID); !errors.Is(err, domain.ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
}

func TestNewGame_StoreFull(t *testing.T) {
	svc := app.NewGameService(failingStore{err: domain.ErrTooManyGames}, &mockCatalog{}, fixedRNG{}, slog.Default())

	_, err := svc.NewGame(context.Background())
	if !errors.Is(err, domain.ErrTooManyGames) {
		t.Errorf("expected ErrTooManyGames, got %v", err)
	}
}

func TestCoins_CatalogFailure(t *testing.T) {
	store := sessions.NewMemoryStore(time.Hour, 0)
	svc := app.NewGameService(store, &mockCatalog{err: errors.New("boom")}, fixedRNG{}, slog.Default())

	if _, err := svc.Coins(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
