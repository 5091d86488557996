package repos

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// StateRepo is the SQLite-backed StateStore.
type StateRepo struct {
	db  *sqlx.DB
	ttl time.Duration
	now func() time.Time
}

func NewStateRepo(db *sqlx.DB, ttl time.Duration) *StateRepo {
	return &StateRepo{db: db, ttl: ttl, now: time.Now}
}

type stateRow struct {
	Payload   string `db:"payload"`
	UpdatedAt int64  `db:"updated_at"`
}

func (r *StateRepo) Load(ctx context.Context, scope, page string, dst any) error {
	var row stateRow
	err := r.db.GetContext(ctx, &row,
		`SELECT payload, updated_at FROM page_states WHERE scope = ? AND page = ?`, scope, page)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrScopeNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s/%s: %w", page, scope, err)
	}
	if r.ttl > 0 && r.now().Sub(time.UnixMilli(row.UpdatedAt)) > r.ttl {
		return ErrScopeNotFound
	}
	if err := json.Unmarshal([]byte(row.Payload), dst); err != nil {
		return fmt.Errorf("decode %s/%s: %w", page, scope, err)
	}
	return nil
}

func (r *StateRepo) Save(ctx context.Context, scope, page string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", page, scope, err)
	}
	now := r.now().UnixMilli()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO page_states(scope, page, payload, created_at, updated_at)
		VALUES(?,?,?,?,?)
		ON CONFLICT(scope, page) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at
	`, scope, page, string(b), now, now)
	if err != nil {
		return fmt.Errorf("save %s/%s: %w", page, scope, err)
	}
	return nil
}

func (r *StateRepo) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM page_states WHERE updated_at < ?`, before.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("prune: %w", err)
	}
	return res.RowsAffected()
}

// Count reports how many scopes are stored.
func (r *StateRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM page_states`)
	return n, err
}
