package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_shop/internal/models"
)

// PgxDisplayRepository stores the single rate-screen configuration row.
type PgxDisplayRepository struct {
	BaseRepository
}

func newPgxDisplayRepository(db *pgxpool.Pool) portsrepo.DisplayConfigRepository {
	return &PgxDisplayRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DisplayConfigRepository = (*PgxDisplayRepository)(nil)

func (r *PgxDisplayRepository) GetDisplayConfig(ctx context.Context) (*domain.DisplayConfig, error) {
	rows, err := r.Pool.Query(ctx, `SELECT codes, direction FROM display_config WHERE id = 1`)
	if err != nil {
		return nil, mapError(err, "load display config")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.DisplayConfig])
	if err != nil {
		return nil, mapError(err, "load display config")
	}
	return &domain.DisplayConfig{Codes: m.Codes, Direction: domain.ParseDisplayDirection(m.Direction)}, nil
}

func (r *PgxDisplayRepository) SaveDisplayConfig(ctx context.Context, cfg domain.DisplayConfig) error {
	codes := cfg.Codes
	if codes == nil {
		codes = []string{}
	}
	// pgx encodes the slice as JSON for the JSONB column.
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO display_config (id, codes, direction, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			codes = EXCLUDED.codes,
			direction = EXCLUDED.direction,
			updated_at = EXCLUDED.updated_at`,
		codes, string(cfg.Direction), time.Now().UTC(),
	)
	return mapError(err, "save display config")
}
