package httpapi

import (
	"net/http"
	"strings"

	"github.com/scoutlens/scoutlens/internal/domain/player"
	"github.com/scoutlens/scoutlens/internal/usecase"
)

type playersResponse struct {
	Success bool            `json:"success"`
	Players []player.Player `json:"players"`
}

type leagueStatsResponse struct {
	Success bool `json:"success"`
	usecase.LeagueStats
}

type teamStatsResponse struct {
	Success bool `json:"success"`
	usecase.TeamStats
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if err := h.validateRequest(ctx, searchRequest{Query: query}); err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.SearchPlayers(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "player search failed", "query", query, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, playersResponse{Success: true, Players: players})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	if err := h.validateRequest(ctx, playerNameRequest{Name: name}); err != nil {
		writeError(ctx, w, err)
		return
	}

	// The bare player endpoint serves the same payload as /analysis so
	// profile views need a single request.
	analysis, err := h.analysisService.AnalyzePlayer(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, analysisResponse{
		Success:  true,
		Player:   analysis.Player,
		Analysis: analysis,
	})
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	team := r.PathValue("teamName")
	players, err := h.playerService.ListPlayersByTeam(ctx, team)
	if err != nil {
		h.logger.WarnContext(ctx, "list players by team failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, playersResponse{Success: true, Players: players})
}

func (h *Handler) ListPlayersByPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByPosition")
	defer span.End()

	position := r.PathValue("position")
	players, err := h.playerService.ListPlayersByPosition(ctx, position)
	if err != nil {
		h.logger.WarnContext(ctx, "list players by position failed", "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, playersResponse{Success: true, Players: players})
}

func (h *Handler) TopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopScorers")
	defer span.End()

	players, err := h.playerService.TopScorers(ctx, queryLimit(r, "limit", 0))
	if err != nil {
		h.logger.WarnContext(ctx, "top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, playersResponse{Success: true, Players: players})
}

func (h *Handler) TopAssists(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopAssists")
	defer span.End()

	players, err := h.playerService.TopAssists(ctx, queryLimit(r, "limit", 0))
	if err != nil {
		h.logger.WarnContext(ctx, "top assists failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, playersResponse{Success: true, Players: players})
}

func (h *Handler) LeagueStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueStats")
	defer span.End()

	stats, err := h.playerService.LeagueStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "league stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, leagueStatsResponse{Success: true, LeagueStats: stats})
}

func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamStats")
	defer span.End()

	stats, err := h.playerService.TeamStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "team stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, teamStatsResponse{Success: true, TeamStats: stats})
}
