package player

import "context"

// Repository describes dataset lookups required by the use cases.
// Implementations load the full table once and answer queries in memory.
type Repository interface {
	All(ctx context.Context) ([]Player, error)

	// Search matches query case-insensitively against name or team and
	// returns at most limit rows in table order.
	Search(ctx context.Context, query string, limit int) ([]Player, error)

	// FindByName resolves a player through tiered matching: exact name,
	// then substring either way, then all query tokens longer than two
	// characters contained in the name.
	FindByName(ctx context.Context, name string) (Player, bool, error)

	ListByTeam(ctx context.Context, team string) ([]Player, error)
	ListByPosition(ctx context.Context, position string) ([]Player, error)

	TopByGoals(ctx context.Context, limit int) ([]Player, error)
	TopByAssists(ctx context.Context, limit int) ([]Player, error)

	// Cohort returns players whose position string carries tag and whose
	// minutes meet the minimum threshold.
	Cohort(ctx context.Context, tag Position, minMinutes float64) ([]Player, error)
}
