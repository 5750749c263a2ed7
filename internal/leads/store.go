package leads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boutique-ecuestre/showroom/internal/database"
)

// Store persists accepted leads.
type Store interface {
	Save(ctx context.Context, lead Lead) error
}

// execer is the subset of pgxpool.Pool used by PostgresStore.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore writes leads to the leads table.
type PostgresStore struct {
	db execer
}

// NewPostgresStore creates a store backed by pool.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	return &PostgresStore{db: pool}, nil
}

// Save inserts lead.
func (s *PostgresStore) Save(ctx context.Context, lead Lead) error {
	query, args, err := database.QB.
		Insert("leads").
		Columns(
			"id", "full_name", "phone", "location", "horse_name", "horse_age",
			"discipline", "estimated_price", "video_url", "description", "created_at",
		).
		Values(
			lead.ID, lead.FullName, lead.Phone, lead.Location, lead.HorseName, lead.HorseAge,
			string(lead.Discipline), lead.EstimatedPrice, lead.VideoURL, lead.Description, lead.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert lead query: %w", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// LogStore records leads in the application log only. It is used when no
// database is configured.
type LogStore struct{}

// Save logs lead.
func (LogStore) Save(_ context.Context, lead Lead) error {
	slog.Info("lead received",
		"lead_id", lead.ID.String(),
		"horse_name", lead.HorseName,
		"discipline", string(lead.Discipline),
		"phone", lead.Phone,
	)
	return nil
}
