package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpSection(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE a (x INT);\n-- +migrate Down\nDROP TABLE a;\n"
	assert.Equal(t, "\nCREATE TABLE a (x INT);\n", upSection(content))
	assert.Equal(t, "CREATE TABLE b (x INT);", upSection("CREATE TABLE b (x INT);"))
	assert.Equal(t, "\nCREATE TABLE c (x INT);", upSection("-- +migrate Up\nCREATE TABLE c (x INT);"))
}

func TestApplyMigrationsOnce(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"m/001_a.sql":  {Data: []byte("-- +migrate Up\nCREATE TABLE a (x INT);\n-- +migrate Down\nDROP TABLE a;")},
		"m/002_b.sql":  {Data: []byte("INSERT INTO a (x) VALUES (1);")},
		"m/readme.txt": {Data: []byte("ignored")},
	}

	require.NoError(t, applyMigrations(db, fsys, "m"))
	require.NoError(t, applyMigrations(db, fsys, "m"))

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM a").Scan(&rows))
	assert.Equal(t, 1, rows, "data migration must run exactly once")

	var recorded int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&recorded))
	assert.Equal(t, 2, recorded)
}

func TestApplyMigrationsRollsBackFailure(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"m/001_bad.sql": {Data: []byte("CREATE TABLE broken (")},
	}
	require.Error(t, applyMigrations(db, fsys, "m"))

	applied, err := migrationApplied(db, "001_bad.sql")
	require.NoError(t, err)
	assert.False(t, applied)
}
