package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

const (
	defaultSearchLimit = 20
	defaultTopLimit    = 10
)

// GroupCount is one name/count pair in a grouped breakdown, sorted by
// count descending with name as the tie-break.
type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// LeagueStats is the per-competition breakdown of the loaded table.
type LeagueStats struct {
	TotalPlayers int            `json:"totalPlayers"`
	Leagues      map[string]int `json:"leagues"`
	TopLeagues   []GroupCount   `json:"topLeagues"`
}

// TeamStats is the per-team breakdown of the loaded table.
type TeamStats struct {
	TotalTeams int            `json:"totalTeams"`
	Teams      map[string]int `json:"teams"`
	TopTeams   []GroupCount   `json:"topTeams"`
}

// PlayerService answers dataset queries over the season table.
type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) SearchPlayers(ctx context.Context, query string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SearchPlayers")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.Search(ctx, query, defaultSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) GetPlayerByName(ctx context.Context, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerByName")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	p, found, err := s.playerRepo.FindByName(ctx, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("find player by name: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, name)
	}

	return p, nil
}

func (s *PlayerService) ListPlayersByTeam(ctx context.Context, team string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayersByTeam")
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.ListByTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, team)
	}

	return players, nil
}

// ListPlayersByPosition returns every player whose position string carries
// the filter. An empty result is not an error, unlike team lookups.
func (s *PlayerService) ListPlayersByPosition(ctx context.Context, position string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayersByPosition")
	defer span.End()

	position = strings.TrimSpace(position)
	if position == "" {
		return nil, fmt.Errorf("%w: position is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.ListByPosition(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("list players by position: %w", err)
	}

	return players, nil
}

func (s *PlayerService) TopScorers(ctx context.Context, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopScorers")
	defer span.End()

	if limit <= 0 {
		limit = defaultTopLimit
	}

	players, err := s.playerRepo.TopByGoals(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top scorers: %w", err)
	}

	return players, nil
}

func (s *PlayerService) TopAssists(ctx context.Context, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopAssists")
	defer span.End()

	if limit <= 0 {
		limit = defaultTopLimit
	}

	players, err := s.playerRepo.TopByAssists(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top assists: %w", err)
	}

	return players, nil
}

func (s *PlayerService) LeagueStats(ctx context.Context) (LeagueStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.LeagueStats")
	defer span.End()

	players, err := s.playerRepo.All(ctx)
	if err != nil {
		return LeagueStats{}, fmt.Errorf("load players: %w", err)
	}

	leagues := map[string]int{}
	for _, p := range players {
		if p.Competition != "" {
			leagues[p.Competition]++
		}
	}

	return LeagueStats{
		TotalPlayers: len(players),
		Leagues:      leagues,
		TopLeagues:   topGroups(leagues, 5),
	}, nil
}

func (s *PlayerService) TeamStats(ctx context.Context) (TeamStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TeamStats")
	defer span.End()

	players, err := s.playerRepo.All(ctx)
	if err != nil {
		return TeamStats{}, fmt.Errorf("load players: %w", err)
	}

	teams := map[string]int{}
	for _, p := range players {
		if p.Team != "" {
			teams[p.Team]++
		}
	}

	return TeamStats{
		TotalTeams: len(teams),
		Teams:      teams,
		TopTeams:   topGroups(teams, 10),
	}, nil
}

func topGroups(counts map[string]int, limit int) []GroupCount {
	out := make([]GroupCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, GroupCount{Name: name, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
