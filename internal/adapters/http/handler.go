package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/randomtoy/change-game/internal/app"
	"github.com/randomtoy/change-game/internal/domain"
)

type Handler struct {
	svc *app.GameService
}

func NewHandler(svc *app.GameService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/coins", h.Coins)

	g := e.Group("/v1/games")
	g.POST("", h.NewGame)
	g.GET("/:id", h.GetGame, validGameID)
	g.DELETE("/:id", h.EndGame, validGameID)
	g.POST("/:id/coins/:coin", h.SelectCoin, validGameID)
	g.DELETE("/:id/coins/:coin", h.RemoveCoin, validGameID)
	g.POST("/:id/clear", h.ClearSelection, validGameID)
	g.POST("/:id/check", h.CheckAnswer, validGameID)
	g.POST("/:id/reset", h.Reset, validGameID)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Coins(c echo.Context) error {
	coins, err := h.svc.Coins(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}

	out := CoinsResponse{Coins: make([]CoinResponse, len(coins))}
	for i, coin := range coins {
		out.Coins[i] = CoinResponse{
			Key:    coin.Denomination.Key(),
			Cents:  coin.Denomination.Cents(),
			Value:  formatCents(coin.Denomination.Cents()),
			Name:   coin.Name,
			Plural: coin.Plural,
			Glyph:  coin.Glyph,
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) NewGame(c echo.Context) error {
	view, err := h.svc.NewGame(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, "/v1/games/"+view.ID)
	return c.JSON(http.StatusCreated, toResponse(view))
}

func (h *Handler) GetGame(c echo.Context) error {
	view, err := h.svc.Game(c.Request().Context(), c.Param("id"))
	return respond(c, view, err)
}

func (h *Handler) EndGame(c echo.Context) error {
	if err := h.svc.EndGame(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SelectCoin backs the primary action on a coin.
func (h *Handler) SelectCoin(c echo.Context) error {
	d, err := domain.ParseDenomination(c.Param("coin"))
	if err != nil {
		return mapError(c, err)
	}
	view, err := h.svc.SelectCoin(c.Request().Context(), c.Param("id"), d)
	return respond(c, view, err)
}

// RemoveCoin backs both the secondary action on a coin and the dedicated
// decrement control.
func (h *Handler) RemoveCoin(c echo.Context) error {
	d, err := domain.ParseDenomination(c.Param("coin"))
	if err != nil {
		return mapError(c, err)
	}
	view, err := h.svc.RemoveCoin(c.Request().Context(), c.Param("id"), d)
	return respond(c, view, err)
}

func (h *Handler) ClearSelection(c echo.Context) error {
	view, err := h.svc.ClearSelection(c.Request().Context(), c.Param("id"))
	return respond(c, view, err)
}

func (h *Handler) CheckAnswer(c echo.Context) error {
	view, err := h.svc.CheckAnswer(c.Request().Context(), c.Param("id"))
	return respond(c, view, err)
}

func (h *Handler) Reset(c echo.Context) error {
	view, err := h.svc.Reset(c.Request().Context(), c.Param("id"))
	return respond(c, view, err)
}

// validGameID rejects IDs that cannot name a game before they reach the
// service.
func validGameID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := uuid.Validate(c.Param("id")); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		}
		return next(c)
	}
}

func respond(c echo.Context, view app.GameView, err error) error {
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toResponse(view))
}

func toResponse(v app.GameView) GameResponse {
	selection := make(map[string]int)
	for _, d := range domain.Denominations {
		if n := v.Selection.Count(d); n > 0 {
			selection[d.Key()] = n
		}
	}

	playing := v.Status == domain.InProgress
	return GameResponse{
		ID:           v.ID,
		TargetCents:  v.Target,
		Target:       formatCents(v.Target),
		TotalCents:   v.Total,
		Total:        formatCents(v.Total),
		Status:       v.Status.String(),
		Feedback:     v.Feedback.String(),
		FeedbackText: feedbackText(v.Feedback),
		Selection:    selection,
		Controls: ControlsResp{
			Select: playing,
			Remove: playing && v.Total > 0,
			Clear:  playing && v.Total > 0,
			Check:  playing,
			Reset:  true,
		},
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrGameNotFound.Error()})
	case errors.Is(err, domain.ErrUnknownDenomination):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrUnknownDenomination.Error()})
	case errors.Is(err, domain.ErrTooManyGames):
		slog.Warn("game capacity reached", "request_id", requestID)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: domain.ErrTooManyGames.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
