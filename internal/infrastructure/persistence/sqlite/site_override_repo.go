package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/repository"
	"github.com/bnema/linekeys/internal/logging"
)

const (
	selectSiteOverrides = `SELECT pattern, action, key, enabled, updated_at FROM site_overrides`

	upsertSiteOverride = `INSERT INTO site_overrides (pattern, action, key, enabled, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (pattern, action) DO UPDATE SET
    key = excluded.key,
    enabled = excluded.enabled,
    updated_at = excluded.updated_at`
)

// sqlite's CURRENT_TIMESTAMP format, used by rows written outside this package.
const sqliteTimeLayout = "2006-01-02 15:04:05"

type siteOverrideRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewSiteOverrideRepository creates a new SQLite-backed site override repository.
func NewSiteOverrideRepository(db *sql.DB) repository.SiteOverrideRepository {
	return &siteOverrideRepo{db: db, now: time.Now}
}

func (r *siteOverrideRepo) Get(ctx context.Context, pattern string, action entity.ActionID) (*entity.SiteOverride, error) {
	row := r.db.QueryRowContext(ctx, selectSiteOverrides+` WHERE pattern = ? AND action = ?`, pattern, string(action))
	o, err := scanSiteOverride(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get site override: %w", err)
	}
	return o, nil
}

func (r *siteOverrideRepo) List(ctx context.Context) ([]entity.SiteOverride, error) {
	return r.query(ctx, selectSiteOverrides+` ORDER BY pattern, action`)
}

func (r *siteOverrideRepo) ListPattern(ctx context.Context, pattern string) ([]entity.SiteOverride, error) {
	return r.query(ctx, selectSiteOverrides+` WHERE pattern = ? ORDER BY action`, pattern)
}

func (r *siteOverrideRepo) Upsert(ctx context.Context, o *entity.SiteOverride) error {
	if o == nil {
		return fmt.Errorf("site override is nil")
	}
	log := logging.FromContext(ctx)

	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = r.now()
	}

	var key, enabled any
	if o.Key != nil {
		key = *o.Key
	}
	if o.Enabled != nil {
		enabled = *o.Enabled
	}

	_, err := r.db.ExecContext(ctx, upsertSiteOverride,
		o.Pattern, string(o.Action), key, enabled, o.UpdatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save site override: %w", err)
	}

	log.Debug().Str("pattern", o.Pattern).Str("action", string(o.Action)).Msg("site override saved")
	return nil
}

func (r *siteOverrideRepo) Delete(ctx context.Context, pattern string, action entity.ActionID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM site_overrides WHERE pattern = ? AND action = ?`, pattern, string(action)); err != nil {
		return fmt.Errorf("failed to delete site override: %w", err)
	}
	return nil
}

func (r *siteOverrideRepo) DeletePattern(ctx context.Context, pattern string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM site_overrides WHERE pattern = ?`, pattern); err != nil {
		return fmt.Errorf("failed to delete site rule: %w", err)
	}
	return nil
}

func (r *siteOverrideRepo) query(ctx context.Context, query string, args ...any) ([]entity.SiteOverride, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list site overrides: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []entity.SiteOverride
	for rows.Next() {
		o, err := scanSiteOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site override: %w", err)
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list site overrides: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSiteOverride(s rowScanner) (*entity.SiteOverride, error) {
	var (
		o         entity.SiteOverride
		action    string
		key       sql.NullString
		enabled   sql.NullBool
		updatedAt string
	)
	if err := s.Scan(&o.Pattern, &action, &key, &enabled, &updatedAt); err != nil {
		return nil, err
	}
	o.Action = entity.ActionID(action)
	if key.Valid {
		o.Key = entity.StringPtr(key.String)
	}
	if enabled.Valid {
		o.Enabled = entity.BoolPtr(enabled.Bool)
	}
	o.UpdatedAt = parseTimestamp(updatedAt)
	return &o, nil
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, sqliteTimeLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
