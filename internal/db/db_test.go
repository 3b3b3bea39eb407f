package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tastelog.sqlite3")

	d, err := Open("file:" + path)
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	assert.Equal(t, SQLite, d.Dialect())
	assert.FileExists(t, path)
}

func TestMigrateIsIdempotent(t *testing.T) {
	d := NewTestDB(t)

	require.NoError(t, Migrate(d))

	for _, table := range []string{"origins", "bean_masters", "shops", "drippers", "filters", "tastings"} {
		var name string
		err := d.QueryRowContext(context.Background(),
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	d := NewTestDB(t)
	ctx := context.Background()

	_, err := d.ExecContext(ctx, `INSERT INTO origins (name) VALUES (?)`, "Ethiopia")
	require.NoError(t, err)

	_, err = d.ExecContext(ctx, `INSERT INTO origins (name) VALUES (?)`, "Ethiopia")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
}

func TestIsForeignKeyViolation(t *testing.T) {
	d := NewTestDB(t)

	_, err := d.ExecContext(context.Background(), `INSERT INTO tastings (dripper_id) VALUES (?)`, 999)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}

func TestEnumCheckConstraint(t *testing.T) {
	d := NewTestDB(t)

	_, err := d.ExecContext(context.Background(), `INSERT INTO filters (name, type) VALUES (?, ?)`, "X", "PLASTIC")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	pg := &DB{dialect: Postgres}
	lite := &DB{dialect: SQLite}

	tests := []struct {
		query string
		want  string
	}{
		{`SELECT 1`, `SELECT 1`},
		{`SELECT * FROM t WHERE a = ? AND b = ?`, `SELECT * FROM t WHERE a = $1 AND b = $2`},
		{`SELECT '?' FROM t WHERE a = ?`, `SELECT '?' FROM t WHERE a = $1`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pg.Rebind(tt.query))
		assert.Equal(t, tt.query, lite.Rebind(tt.query))
	}
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, IsPostgresDSN("postgres://user:pw@localhost/tastelog"))
	assert.True(t, IsPostgresDSN("postgresql://localhost/tastelog"))
	assert.False(t, IsPostgresDSN("file:./data/tastelog.db"))
	assert.False(t, IsPostgresDSN("./data/tastelog.db"))
}
