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

// PgxRateRepository stores admin overrides and pricing rules.
type PgxRateRepository struct {
	BaseRepository
}

func newPgxRateRepository(db *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

func toDomainRateRule(m models.RateRule) domain.RateRule {
	return domain.RateRule{
		Code:        m.Code,
		Mode:        domain.RuleMode(m.Mode),
		ManualBuy:   m.ManualBuy,
		ManualSell:  m.ManualSell,
		PercentBuy:  m.PercentBuy,
		PercentSell: m.PercentSell,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *PgxRateRepository) ListOverrides(ctx context.Context) (map[string]float64, error) {
	rows, err := r.Pool.Query(ctx, `SELECT code, value, updated_at FROM rate_overrides`)
	if err != nil {
		return nil, mapError(err, "list rate overrides")
	}
	overrides, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RateOverride])
	if err != nil {
		return nil, mapError(err, "scan rate overrides")
	}
	byCode := make(map[string]float64, len(overrides))
	for _, o := range overrides {
		byCode[o.Code] = o.Value
	}
	return byCode, nil
}

func (r *PgxRateRepository) UpsertOverride(ctx context.Context, override domain.RateOverride) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO rate_overrides (code, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`,
		override.Code, override.Value, time.Now().UTC(),
	)
	return mapError(err, "save rate override")
}

func (r *PgxRateRepository) DeleteOverride(ctx context.Context, code string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM rate_overrides WHERE code = $1`, code)
	return mapError(err, "delete rate override")
}

func (r *PgxRateRepository) ListRules(ctx context.Context) (map[string]domain.RateRule, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT code, mode, manual_buy, manual_sell, percent_buy, percent_sell, updated_at
		FROM rate_rules`)
	if err != nil {
		return nil, mapError(err, "list rate rules")
	}
	rules, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RateRule])
	if err != nil {
		return nil, mapError(err, "scan rate rules")
	}
	byCode := make(map[string]domain.RateRule, len(rules))
	for _, m := range rules {
		byCode[m.Code] = toDomainRateRule(m)
	}
	return byCode, nil
}

func (r *PgxRateRepository) UpsertRule(ctx context.Context, rule domain.RateRule) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO rate_rules (code, mode, manual_buy, manual_sell, percent_buy, percent_sell, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code) DO UPDATE SET
			mode = EXCLUDED.mode,
			manual_buy = EXCLUDED.manual_buy,
			manual_sell = EXCLUDED.manual_sell,
			percent_buy = EXCLUDED.percent_buy,
			percent_sell = EXCLUDED.percent_sell,
			updated_at = EXCLUDED.updated_at`,
		rule.Code, string(rule.Mode), rule.ManualBuy, rule.ManualSell, rule.PercentBuy, rule.PercentSell, rule.UpdatedAt,
	)
	return mapError(err, "save rate rule")
}
