// Package pgtest opens a migrated, throwaway Postgres schema for integration tests.
// Tests are skipped unless TEST_DATABASE_URL holds a postgres:// URL.
package pgtest

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/dwikikusuma/storefront/pkg/postgres"
)

const EnvURL = "TEST_DATABASE_URL"

// Open creates a fresh schema, applies every migration in it and drops it when the test ends.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	raw := lookupURL(t)

	admin, err := postgres.OpenDSN(raw, postgres.Config{})
	if err != nil {
		t.Fatalf("open admin connection: %v", err)
	}
	t.Cleanup(func() { admin.Close() })

	schema := "t_" + strings.ToLower(ulid.Make().String())
	ctx := context.Background()
	if _, err := admin.ExecContext(ctx, `CREATE SCHEMA `+schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() {
		_, _ = admin.ExecContext(context.Background(), `DROP SCHEMA `+schema+` CASCADE`)
	})

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %s: %v", EnvURL, err)
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()

	db, err := postgres.OpenDSN(u.String(), postgres.Config{MaxOpenConns: 10})
	if err != nil {
		t.Fatalf("open test schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := postgres.Migrate(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func lookupURL(t *testing.T) string {
	t.Helper()
	raw := strings.TrimSpace(os.Getenv(EnvURL))
	if raw == "" {
		t.Skipf("%s not set, skipping Postgres integration test", EnvURL)
	}
	return raw
}
