package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

func similarityFixture() *fakePlayerRepo {
	forward := func(name string, goals, assists float64) player.Player {
		return player.Player{
			Name: name, Position: "FW", Team: "Club", Competition: "fr Ligue 1",
			Age: player.Num(24), Minutes: player.Num(1800),
			Goals: player.Num(goals), Assists: player.Num(assists),
			ExpectedGoals: player.Num(goals * 0.8), ExpectedAssists: player.Num(assists * 0.8),
			DribbleSuccessPct: player.Num(50), Tackles: player.Num(10),
		}
	}
	return &fakePlayerRepo{players: []player.Player{
		forward("Jean Dupont", 14, 3),
		forward("Twin", 14, 3),
		forward("Close", 12, 3),
		forward("Far", 2, 0),
		// Different position, never a candidate.
		{Name: "Marco Rossi", Position: "DF", Team: "Milan", Age: player.Num(24), Minutes: player.Num(1800), Goals: player.Num(14), Assists: player.Num(3)},
	}}
}

func TestSimilarPlayers(t *testing.T) {
	svc := NewSimilarityService(similarityFixture())

	target, similar, err := svc.SimilarPlayers(context.Background(), "Jean Dupont", 2)
	if err != nil {
		t.Fatalf("SimilarPlayers: %v", err)
	}
	if target.Name != "Jean Dupont" {
		t.Fatalf("target = %q", target.Name)
	}
	if len(similar) != 2 {
		t.Fatalf("got %d similar players, want 2", len(similar))
	}
	if similar[0].Name != "Twin" || similar[1].Name != "Close" {
		t.Fatalf("similar = [%q, %q]", similar[0].Name, similar[1].Name)
	}
}

func TestSimilarPlayersEmptyPool(t *testing.T) {
	repo := &fakePlayerRepo{players: []player.Player{
		{Name: "Lone Keeper", Position: "GK", Team: "Club", Age: player.Num(30), Minutes: player.Num(2000)},
	}}
	svc := NewSimilarityService(repo)

	_, similar, err := svc.SimilarPlayers(context.Background(), "Lone Keeper", 3)
	if err != nil {
		t.Fatalf("SimilarPlayers: %v", err)
	}
	if len(similar) != 0 {
		t.Fatalf("similar = %d entries, want none", len(similar))
	}
}

func TestSimilarPlayersErrors(t *testing.T) {
	svc := NewSimilarityService(similarityFixture())

	if _, _, err := svc.SimilarPlayers(context.Background(), "", 3); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if _, _, err := svc.SimilarPlayers(context.Background(), "Nobody", 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
