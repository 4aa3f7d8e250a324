package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/scoutlens/scoutlens/internal/domain/player"
	"github.com/scoutlens/scoutlens/internal/platform/logging"
	"github.com/scoutlens/scoutlens/internal/platform/resilience"
)

const testTable = `Rk,Player,Nation,Pos,Squad,Comp,Age,MP,Min,Gls,Ast,Tkl
1,Jean Dupont,fr FRA,FW,Paris FC,fr Ligue 1,24,20,1800,14,3,10
2,Dupont,fr FRA,MF,Lyon,fr Ligue 1,27,25,2100,4,8,30
3,"Doe, John",eng ENG,FW,Arsenal,eng Premier League,22,18,1500,9,2,8
4,Marco Rossi,it ITA,DF,Milan,it Serie A,30,28,2400,1,1,60
5,Youngster,de GER,FW,Mainz,de Bundesliga,19,5,80,1,0,2
`

func newTestRepository(t *testing.T) *PlayerRepository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "players.csv")
	if err := os.WriteFile(path, []byte(testTable), 0o600); err != nil {
		t.Fatalf("write table: %v", err)
	}

	return NewPlayerRepository(Config{
		Path:          path,
		WarmupWorkers: 2,
		Logger:        logging.NewNop(),
	})
}

func TestAllLoadsOnce(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	players, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(players) != 5 {
		t.Fatalf("got %d players, want 5", len(players))
	}
}

func TestLoadErrorSurfaces(t *testing.T) {
	repo := NewPlayerRepository(Config{
		Path:   filepath.Join(t.TempDir(), "missing.csv"),
		Logger: logging.NewNop(),
	})

	if _, err := repo.All(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}

	// A failed load must not latch; the retry still reports the error.
	if _, err := repo.All(context.Background()); err == nil {
		t.Fatalf("expected error on retry")
	}
}

func TestSearchMatchesNameOrTeam(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	byName, err := repo.Search(ctx, "dupont", 20)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(byName) != 2 {
		t.Fatalf("got %d matches for dupont, want 2", len(byName))
	}

	byTeam, err := repo.Search(ctx, "arsenal", 20)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(byTeam) != 1 || byTeam[0].Name != "Doe, John" {
		t.Fatalf("team search = %v", byTeam)
	}

	capped, err := repo.Search(ctx, "", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(capped) != 2 {
		t.Fatalf("limit not applied, got %d", len(capped))
	}
}

func TestFindByNameTierOrdering(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// Exact match wins over the substring hit on "Jean Dupont".
	got, ok, err := repo.FindByName(ctx, "Dupont")
	if err != nil || !ok {
		t.Fatalf("FindByName: ok=%v err=%v", ok, err)
	}
	if got.Team != "Lyon" {
		t.Fatalf("resolved %s (%s), want the exact match from Lyon", got.Name, got.Team)
	}

	// Substring tier both ways.
	got, ok, err = repo.FindByName(ctx, "jean dup")
	if err != nil || !ok {
		t.Fatalf("FindByName: ok=%v err=%v", ok, err)
	}
	if got.Name != "Jean Dupont" {
		t.Fatalf("resolved %s, want Jean Dupont", got.Name)
	}

	// Token tier: every word longer than two characters must appear.
	got, ok, err = repo.FindByName(ctx, "rossi marco")
	if err != nil || !ok {
		t.Fatalf("FindByName: ok=%v err=%v", ok, err)
	}
	if got.Name != "Marco Rossi" {
		t.Fatalf("resolved %s, want Marco Rossi", got.Name)
	}

	if _, ok, err = repo.FindByName(ctx, "Nobody Here"); err != nil || ok {
		t.Fatalf("expected no match, ok=%v err=%v", ok, err)
	}
}

func TestListByTeamAndPosition(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	lyon, err := repo.ListByTeam(ctx, "LYON")
	if err != nil {
		t.Fatalf("ListByTeam: %v", err)
	}
	if len(lyon) != 1 || lyon[0].Name != "Dupont" {
		t.Fatalf("lyon = %v", lyon)
	}

	forwards, err := repo.ListByPosition(ctx, "fw")
	if err != nil {
		t.Fatalf("ListByPosition: %v", err)
	}
	if len(forwards) != 3 {
		t.Fatalf("got %d forwards, want 3", len(forwards))
	}
}

func TestTopByGoals(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	top, err := repo.TopByGoals(ctx, 2)
	if err != nil {
		t.Fatalf("TopByGoals: %v", err)
	}
	if len(top) != 2 || top[0].Name != "Jean Dupont" || top[1].Name != "Doe, John" {
		t.Fatalf("top scorers = %v", top)
	}
}

func TestCohortFiltersMinutes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cohort, err := repo.Cohort(ctx, player.PositionForward, 90)
	if err != nil {
		t.Fatalf("Cohort: %v", err)
	}
	// Youngster has only 80 minutes and must be excluded.
	if len(cohort) != 2 {
		t.Fatalf("got %d forwards in cohort, want 2", len(cohort))
	}
	for _, p := range cohort {
		if p.Name == "Youngster" {
			t.Fatalf("cohort must exclude players under the minutes floor")
		}
	}
}

func TestConcurrentFirstAccess(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.All(ctx); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent All: %v", err)
	}
}

func TestBreakerOpensAfterRepeatedLoadFailures(t *testing.T) {
	repo := NewPlayerRepository(Config{
		Path: filepath.Join(t.TempDir(), "missing.csv"),
		Breaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Hour,
			HalfOpenMaxReq:   1,
		},
		Logger: logging.NewNop(),
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.All(ctx); err != nil && errors.Is(err, resilience.ErrCircuitOpen) {
			t.Fatalf("breaker opened too early on attempt %d", i+1)
		}
	}

	_, err := repo.All(ctx)
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
}
