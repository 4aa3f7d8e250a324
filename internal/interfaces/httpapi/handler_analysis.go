package httpapi

import (
	"net/http"

	"github.com/scoutlens/scoutlens/internal/domain/pitchmap"
	"github.com/scoutlens/scoutlens/internal/domain/player"
	"github.com/scoutlens/scoutlens/internal/usecase"
)

type analysisResponse struct {
	Success  bool             `json:"success"`
	Player   player.Player    `json:"player"`
	Analysis usecase.Analysis `json:"analysis"`
}

type heatmapResponse struct {
	Success bool                  `json:"success"`
	Player  player.Player         `json:"player"`
	Heatmap usecase.HeatmapBundle `json:"heatmap"`
}

type passMapResponse struct {
	Success bool                `json:"success"`
	Player  player.Player       `json:"player"`
	PassMap []pitchmap.PassEdge `json:"passMap"`
	Stats   usecase.PassStats   `json:"stats"`
}

type weaknessResponse struct {
	Success     bool          `json:"success"`
	Player      player.Player `json:"player"`
	Position    string        `json:"position"`
	Weaknesses  []string      `json:"weaknesses"`
	Suggestions []string      `json:"suggestions"`
}

func (h *Handler) AnalyzePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzePlayer")
	defer span.End()

	name := r.PathValue("name")
	analysis, err := h.analysisService.AnalyzePlayer(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "player analysis failed", "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, analysisResponse{
		Success:  true,
		Player:   analysis.Player,
		Analysis: analysis,
	})
}

func (h *Handler) PlayerHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerHeatmap")
	defer span.End()

	name := r.PathValue("name")
	p, bundle, err := h.analysisService.Heatmap(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "player heatmap failed", "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, heatmapResponse{Success: true, Player: p, Heatmap: bundle})
}

func (h *Handler) PlayerPassMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerPassMap")
	defer span.End()

	name := r.PathValue("name")
	p, report, err := h.analysisService.PassMap(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "player pass map failed", "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, passMapResponse{
		Success: true,
		Player:  p,
		PassMap: report.PassMap,
		Stats:   report.Stats,
	})
}

func (h *Handler) PlayerWeaknesses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerWeaknesses")
	defer span.End()

	name := r.PathValue("name")
	report, err := h.analysisService.PlayerWeaknesses(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "player weaknesses failed", "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, weaknessResponse{
		Success:     true,
		Player:      report.Player,
		Position:    report.Position,
		Weaknesses:  report.Weaknesses,
		Suggestions: report.Suggestions,
	})
}
