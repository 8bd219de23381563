package migrations_test

import (
	"context"
	"testing"

	"github.com/playperu/minicourse/internal/database"
	"github.com/playperu/minicourse/internal/migrations"
)

func TestMigrations(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := migrations.Run(context.Background(), db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	want := []string{"kv", "goose_db_version"}

	for _, table := range want {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found: %v", table, err)
		}
	}
}

func TestKVUpsert(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := migrations.Run(context.Background(), db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	for _, doc := range []string{`{"v":1}`, `{"v":2}`} {
		if _, err := db.Exec(
			`INSERT INTO kv (id, data) VALUES ('k', jsonb(?)) ON CONFLICT(id) DO UPDATE SET data = excluded.data`, doc,
		); err != nil {
			t.Fatalf("upserting %s: %v", doc, err)
		}
	}

	var got string
	if err := db.QueryRow(`SELECT json(data) FROM kv WHERE id = 'k'`).Scan(&got); err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if got != `{"v":2}` {
		t.Errorf("data = %s, want {\"v\":2}", got)
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if n, err := migrations.Run(context.Background(), db); err != nil || n != 1 {
		t.Fatalf("first run: applied %d, err %v", n, err)
	}
	if n, err := migrations.Run(context.Background(), db); err != nil || n != 0 {
		t.Fatalf("second run: applied %d, err %v", n, err)
	}
}
