package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCSVDirectRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/csv-direct/search", handler.SearchPlayers)
	mux.HandleFunc("GET /api/csv-direct/leagues", handler.LeagueStats)
	mux.HandleFunc("GET /api/csv-direct/teams", handler.TeamStats)
	mux.HandleFunc("GET /api/csv-direct/top-scorers", handler.TopScorers)
	mux.HandleFunc("GET /api/csv-direct/top-assists", handler.TopAssists)
	mux.HandleFunc("GET /api/csv-direct/team/{teamName}", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /api/csv-direct/position/{position}", handler.ListPlayersByPosition)
	mux.HandleFunc("GET /api/csv-direct/player/{name}", handler.GetPlayer)
	mux.HandleFunc("GET /api/csv-direct/player/{name}/analysis", handler.AnalyzePlayer)
	mux.HandleFunc("GET /api/csv-direct/player/{name}/heatmap", handler.PlayerHeatmap)
	mux.HandleFunc("GET /api/csv-direct/player/{name}/passmap", handler.PlayerPassMap)
	mux.HandleFunc("GET /api/csv-direct/player/{name}/market-value", handler.PlayerMarketValue)
	mux.HandleFunc("GET /api/csv-direct/player/{name}/weaknesses", handler.PlayerWeaknesses)
	mux.HandleFunc("GET /api/csv-direct/compare/{player1Name}/{player2Name}", handler.ComparePlayers)
	mux.HandleFunc("GET /api/csv-direct/similar/{name}", handler.SimilarPlayers)
}
