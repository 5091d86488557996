package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the scope database and makes sure the schema exists.
// An in-memory DSN lives only as long as its single connection, so the pool
// is pinned to one connection for every DSN.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- One row per page scope: the state a single page load is working on.
CREATE TABLE IF NOT EXISTS page_states(
  scope TEXT NOT NULL,
  page TEXT NOT NULL,
  payload TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL,
  PRIMARY KEY(scope, page)
);
CREATE INDEX IF NOT EXISTS idx_page_states_updated ON page_states(updated_at);
`
	_, err := db.Exec(schema)
	return err
}
