package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/scoutlens/scoutlens/internal/domain/player"
	"github.com/scoutlens/scoutlens/internal/domain/similarity"
)

// SimilarityService finds statistical neighbors for a target player.
type SimilarityService struct {
	playerRepo player.Repository
}

func NewSimilarityService(playerRepo player.Repository) *SimilarityService {
	return &SimilarityService{playerRepo: playerRepo}
}

// SimilarPlayers returns the k nearest players to the named target. An
// empty candidate pool yields an empty list, not an error.
func (s *SimilarityService) SimilarPlayers(ctx context.Context, name string, k int) (player.Player, []player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimilarityService.SimilarPlayers")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	target, found, err := s.playerRepo.FindByName(ctx, name)
	if err != nil {
		return player.Player{}, nil, fmt.Errorf("find player by name: %w", err)
	}
	if !found {
		return player.Player{}, nil, fmt.Errorf("%w: player=%s", ErrNotFound, name)
	}

	all, err := s.playerRepo.All(ctx)
	if err != nil {
		return player.Player{}, nil, fmt.Errorf("load players: %w", err)
	}

	matches := similarity.KNearest(target, all, k)
	similar := make([]player.Player, len(matches))
	for i, m := range matches {
		similar[i] = m.Player
	}

	return target, similar, nil
}
