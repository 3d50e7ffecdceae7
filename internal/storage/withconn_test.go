package storage

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"ProjectUploadService/internal/config"
	"ProjectUploadService/internal/errs"
	"ProjectUploadService/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `CREATE TABLE upload (
	email TEXT NOT NULL, password TEXT NOT NULL, address TEXT NOT NULL, projectTitle TEXT NOT NULL,
	projectDescription TEXT, projectExperience TEXT, shareLink TEXT)`

// openSQLite returns a pool with the default sizing: no idle connections kept.
func openSQLite(t *testing.T, withTable bool) *sql.DB {
	t.Helper()
	db, err := OpenDB(config.DatabaseConfig{
		Driver:        config.DriverSQLite,
		ConnectString: "file:" + filepath.Join(t.TempDir(), "conn.db") + "?_pragma=busy_timeout(10000)",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	if withTable {
		_, err = db.Exec(testSchema)
		require.NoError(t, err)
	}
	return db
}

func assertReleased(t *testing.T, db *sql.DB) {
	t.Helper()
	stats := db.Stats()
	assert.Zero(t, stats.InUse, "connections still in use")
	assert.Zero(t, stats.OpenConnections, "connections still open")
}

func TestConnectionReleasedOnEveryPath(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := openSQLite(t, true)
		s := NewUploadStorage(db, config.DriverSQLite, zerolog.Nop())

		require.NoError(t, s.Create(ctx, models.UploadRecord{Email: "a@x.com", Password: "p", Address: "a", ProjectTitle: "t"}))
		assertReleased(t, db)

		records, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 1)
		assertReleased(t, db)
	})

	t.Run("failing statement", func(t *testing.T) {
		db := openSQLite(t, false)
		s := NewUploadStorage(db, config.DriverSQLite, zerolog.Nop())

		_, err := s.List(ctx)
		require.Error(t, err)
		assertReleased(t, db)

		_, err = s.Delete(ctx, "a@x.com")
		require.Error(t, err)
		assertReleased(t, db)
	})

	t.Run("scan error", func(t *testing.T) {
		db := openSQLite(t, true)
		s := NewUploadStorage(db, config.DriverSQLite, zerolog.Nop())

		err := s.withConn(ctx, "scan", func(conn *sql.Conn) error {
			var n int
			return conn.QueryRowContext(ctx, `SELECT 'not a number'`).Scan(&n)
		})
		var dbErr *errs.DatabaseError
		require.ErrorAs(t, err, &dbErr)
		assert.Equal(t, "scan", dbErr.Op)
		assertReleased(t, db)
	})
}

func TestReleaseFailureIsLoggedAndSwallowed(t *testing.T) {
	ctx := context.Background()

	t.Run("fn succeeded", func(t *testing.T) {
		var buf bytes.Buffer
		db := openSQLite(t, true)
		s := NewUploadStorage(db, config.DriverSQLite, zerolog.New(&buf))

		err := s.withConn(ctx, "create", func(conn *sql.Conn) error {
			// the deferred release then sees sql.ErrConnDone
			return conn.Close()
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "withConn(): failed to release connection")
		assert.Contains(t, buf.String(), sql.ErrConnDone.Error())
		assert.Contains(t, buf.String(), `"op":"create"`)
	})

	t.Run("fn failed", func(t *testing.T) {
		var buf bytes.Buffer
		db := openSQLite(t, true)
		s := NewUploadStorage(db, config.DriverSQLite, zerolog.New(&buf))

		boom := errors.New("boom")
		err := s.withConn(ctx, "update", func(conn *sql.Conn) error {
			_ = conn.Close()
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, sql.ErrConnDone)
		assert.Contains(t, buf.String(), "withConn(): failed to release connection")
	})
}
