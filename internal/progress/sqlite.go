package progress

import (
	"context"
	"database/sql"
	"errors"
)

// SQLitePersister keeps the state as a JSONB document in the kv table.
type SQLitePersister struct {
	db  *sql.DB
	key string
}

func NewSQLitePersister(db *sql.DB) *SQLitePersister {
	return &SQLitePersister{db: db, key: Namespace}
}

func (p *SQLitePersister) Load(ctx context.Context) ([]byte, error) {
	var data string
	err := p.db.QueryRowContext(ctx, `SELECT json(data) FROM kv WHERE id = ?`, p.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoState
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (p *SQLitePersister) Save(ctx context.Context, data []byte) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO kv (id, data) VALUES (?, jsonb(?))
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data,
		   updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		p.key, string(data),
	)
	return err
}
