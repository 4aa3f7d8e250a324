// Package csvfile loads the player season table from a flat CSV export
// and answers repository queries from memory. The file is read and parsed
// once per process; concurrent first requests share a single in-flight
// load instead of racing.
package csvfile

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/scoutlens/scoutlens/internal/domain/player"
	"github.com/scoutlens/scoutlens/internal/domain/scouting"
	"github.com/scoutlens/scoutlens/internal/platform/cache"
	"github.com/scoutlens/scoutlens/internal/platform/logging"
	"github.com/scoutlens/scoutlens/internal/platform/resilience"
)

// Config controls the loader. Path is required.
type Config struct {
	Path string
	// CohortTTL bounds cohort cache entries; zero keeps them for the
	// process lifetime, which matches the never-refreshed table.
	CohortTTL time.Duration
	// WarmupWorkers sizes the pool that precomputes position cohorts
	// after a successful load. Zero disables warm-up.
	WarmupWorkers int
	// DisableCohortCache recomputes cohorts on every call.
	DisableCohortCache bool
	// Breaker guards the file load. Repeated read or parse failures
	// open the circuit and suppress further disk hits until the open
	// timeout elapses.
	Breaker resilience.CircuitBreakerConfig
	Logger  *logging.Logger
}

// PlayerRepository is the CSV-backed player.Repository implementation.
type PlayerRepository struct {
	cfg    Config
	logger *logging.Logger

	flight  resilience.SingleFlight
	breaker *resilience.CircuitBreaker
	loaded  atomic.Bool
	mu      sync.RWMutex
	players []player.Player

	cohorts *cache.Store
}

func NewPlayerRepository(cfg Config) *PlayerRepository {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	var breaker *resilience.CircuitBreaker
	if cfg.Breaker.Enabled {
		normalized := resilience.NormalizeCircuitBreakerConfig(cfg.Breaker)
		breaker = resilience.NewCircuitBreaker(
			normalized.FailureThreshold,
			normalized.OpenTimeout,
			normalized.HalfOpenMaxReq,
		)
	}

	return &PlayerRepository{
		cfg:     cfg,
		logger:  logger,
		breaker: breaker,
		cohorts: cache.NewStore(cfg.CohortTTL),
	}
}

// load reads and parses the table exactly once. A failed load is not
// latched, so the next request retries the file.
func (r *PlayerRepository) load(ctx context.Context) error {
	if r.loaded.Load() {
		return nil
	}

	if r.breaker != nil {
		if err := r.breaker.Allow(); err != nil {
			return errors.Wrapf(err, "players table %s", r.cfg.Path)
		}
	}

	_, err, _ := r.flight.Do("load", func() (any, error) {
		if r.loaded.Load() {
			return nil, nil
		}

		raw, err := os.ReadFile(r.cfg.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "read players table %s", r.cfg.Path)
		}

		players, err := parseTable(string(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "parse players table %s", r.cfg.Path)
		}

		r.mu.Lock()
		r.players = players
		r.mu.Unlock()
		r.loaded.Store(true)

		r.logger.InfoContext(ctx, "players table loaded",
			"path", r.cfg.Path,
			"players", len(players),
		)

		r.warmCohorts(ctx)
		return nil, nil
	})

	if r.breaker != nil {
		if err != nil {
			r.breaker.RecordFailure()
		} else {
			r.breaker.RecordSuccess()
		}
	}
	return err
}

// warmCohorts precomputes the four position cohorts in parallel so first
// percentile requests hit the cache.
func (r *PlayerRepository) warmCohorts(ctx context.Context) {
	if r.cfg.WarmupWorkers <= 0 {
		return
	}

	pool, err := ants.NewPool(r.cfg.WarmupWorkers)
	if err != nil {
		r.logger.WarnContext(ctx, "cohort warm-up pool unavailable", "error", err)
		return
	}
	defer pool.Release()

	tags := []player.Position{
		player.PositionGoalkeeper,
		player.PositionDefender,
		player.PositionMidfielder,
		player.PositionForward,
	}

	var workers sync.WaitGroup
	for _, tag := range tags {
		tag := tag
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if _, err := r.Cohort(ctx, tag, scouting.CohortMinMinutes); err != nil {
				r.logger.WarnContext(ctx, "cohort warm-up failed", "position", string(tag), "error", err)
			}
		}); err != nil {
			workers.Done()
			r.logger.WarnContext(ctx, "cohort warm-up submit failed", "position", string(tag), "error", err)
		}
	}
	workers.Wait()
}

func (r *PlayerRepository) snapshot(ctx context.Context) ([]player.Player, error) {
	if err := r.load(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players, nil
}

func (r *PlayerRepository) All(ctx context.Context) ([]player.Player, error) {
	players, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, len(players))
	copy(out, players)
	return out, nil
}

func (r *PlayerRepository) Search(ctx context.Context, query string, limit int) ([]player.Player, error) {
	players, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(query)
	out := []player.Player{}
	for _, p := range players {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Team), term) {
			out = append(out, p)
		}
	}

	return out, nil
}

// FindByName resolves a player in three tiers: exact match, substring
// either way, then all query tokens longer than two characters contained
// in the name. Earlier tiers always win, so an exact "Dupont" beats a
// substring hit on "Jean Dupont".
func (r *PlayerRepository) FindByName(ctx context.Context, name string) (player.Player, bool, error) {
	players, err := r.snapshot(ctx)
	if err != nil {
		return player.Player{}, false, err
	}

	target := strings.ToLower(strings.TrimSpace(name))

	for _, p := range players {
		if strings.ToLower(strings.TrimSpace(p.Name)) == target {
			return p, true, nil
		}
	}

	for _, p := range players {
		candidate := strings.ToLower(strings.TrimSpace(p.Name))
		if strings.Contains(candidate, target) || strings.Contains(target, candidate) {
			return p, true, nil
		}
	}

	var tokens []string
	for _, word := range strings.Fields(target) {
		if len(word) > 2 {
			tokens = append(tokens, word)
		}
	}
	if len(tokens) > 0 {
		for _, p := range players {
			candidate := strings.ToLower(strings.TrimSpace(p.Name))
			all := true
			for _, token := range tokens {
				if !strings.Contains(candidate, token) {
					all = false
					break
				}
			}
			if all {
				return p, true, nil
			}
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, team string) ([]player.Player, error) {
	players, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(team)
	out := []player.Player{}
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Team), term) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListByPosition(ctx context.Context, position string) ([]player.Player, error) {
	players, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToUpper(position)
	out := []player.Player{}
	for _, p := range players {
		if strings.Contains(strings.ToUpper(p.Position), term) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) TopByGoals(ctx context.Context, limit int) ([]player.Player, error) {
	return r.topBy(ctx, limit, func(p player.Player) float64 { return p.Goals.Or(0) })
}

func (r *PlayerRepository) TopByAssists(ctx context.Context, limit int) ([]player.Player, error) {
	return r.topBy(ctx, limit, func(p player.Player) float64 { return p.Assists.Or(0) })
}

func (r *PlayerRepository) topBy(ctx context.Context, limit int, value func(player.Player) float64) ([]player.Player, error) {
	players, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := []player.Player{}
	for _, p := range players {
		if value(p) > 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return value(out[i]) > value(out[j])
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Cohort filters players carrying the position tag with at least
// minMinutes played. Results are cached since the table never changes.
func (r *PlayerRepository) Cohort(ctx context.Context, tag player.Position, minMinutes float64) ([]player.Player, error) {
	if err := r.load(ctx); err != nil {
		return nil, err
	}

	compute := func(context.Context) (any, error) {
		r.mu.RLock()
		defer r.mu.RUnlock()

		out := []player.Player{}
		for _, p := range r.players {
			if p.HasPosition(tag) && p.Minutes.Or(0) >= minMinutes {
				out = append(out, p)
			}
		}
		return out, nil
	}

	key := fmt.Sprintf("cohort:%s:%g", tag, minMinutes)
	var value any
	var err error
	if r.cfg.DisableCohortCache {
		value, err = compute(ctx)
	} else {
		value, err = r.cohorts.GetOrLoad(ctx, key, compute)
	}
	if err != nil {
		return nil, err
	}

	cohort, ok := value.([]player.Player)
	if !ok {
		return nil, errors.Newf("unexpected cohort cache entry for %s", key)
	}
	return cohort, nil
}
