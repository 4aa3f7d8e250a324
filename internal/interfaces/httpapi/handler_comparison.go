package httpapi

import (
	"net/http"

	"github.com/scoutlens/scoutlens/internal/domain/player"
	"github.com/scoutlens/scoutlens/internal/usecase"
)

type marketValueResponse struct {
	Success     bool                      `json:"success"`
	Player      player.Player             `json:"player"`
	MarketValue usecase.MarketValueReport `json:"marketValue"`
}

type comparisonResponse struct {
	Success    bool                     `json:"success"`
	Comparison usecase.ComparisonResult `json:"comparison"`
}

func (h *Handler) PlayerMarketValue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerMarketValue")
	defer span.End()

	name := r.PathValue("name")
	p, report, err := h.comparisonService.MarketValue(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "market value failed", "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, marketValueResponse{Success: true, Player: p, MarketValue: report})
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	name1 := r.PathValue("player1Name")
	name2 := r.PathValue("player2Name")

	result, err := h.comparisonService.Compare(ctx, name1, name2)
	if err != nil {
		h.logger.WarnContext(ctx, "player comparison failed", "player1", name1, "player2", name2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, comparisonResponse{Success: true, Comparison: result})
}
