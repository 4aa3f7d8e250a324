package httpapi

import (
	"net/http"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

type similarPlayersResponse struct {
	Success bool            `json:"success"`
	Target  player.Player   `json:"target"`
	Similar []player.Player `json:"similar"`
	Count   int             `json:"count"`
}

func (h *Handler) SimilarPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SimilarPlayers")
	defer span.End()

	name := r.PathValue("name")
	k := queryLimit(r, "k", 0)

	target, similar, err := h.similarityService.SimilarPlayers(ctx, name, k)
	if err != nil {
		h.logger.WarnContext(ctx, "similar players failed", "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, similarPlayersResponse{
		Success: true,
		Target:  target,
		Similar: similar,
		Count:   len(similar),
	})
}
