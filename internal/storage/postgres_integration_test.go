//go:build integration

// Runs the storage against a throwaway PostgreSQL container.
//
//	go test -tags integration ./internal/storage -run Postgres
//
// Requires a reachable Docker daemon.
package storage_test

import (
	"context"
	"database/sql"
	"testing"

	"ProjectUploadService/internal/config"
	"ProjectUploadService/internal/models"
	"ProjectUploadService/internal/storage"
	"ProjectUploadService/internal/storage/migrations"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startPostgres(t *testing.T) config.DatabaseConfig {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=system",
			"POSTGRES_PASSWORD=manager",
			"POSTGRES_DB=upload",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	if err != nil {
		t.Fatalf("could not start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	cfg := config.DatabaseConfig{
		Driver:        config.DriverPostgres,
		User:          "system",
		Password:      "manager",
		ConnectString: "localhost:" + resource.GetPort("5432/tcp") + "/upload?sslmode=disable",
	}

	if err := pool.Retry(func() error {
		dsn, err := storage.DSN(cfg)
		if err != nil {
			return err
		}
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Ping()
	}); err != nil {
		t.Fatalf("postgres not ready: %v", err)
	}

	require.NoError(t, migrations.Up(cfg))
	return cfg
}

func TestPostgresUploadLifecycle(t *testing.T) {
	cfg := startPostgres(t)

	db, err := storage.OpenDB(cfg)
	require.NoError(t, err)
	defer db.Close()

	s := storage.NewUploadStorage(db, cfg.Driver, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Create(ctx, models.UploadRecord{
		Email: "a@x.com", Password: "p", Address: "123 St", ProjectTitle: "T",
	}))

	affected, err := s.Update(ctx, models.UploadRecord{
		Email: "a@x.com", Password: "p", Address: "456 Ave", ProjectTitle: "T",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "456 Ave", records[0].Address)
	assert.Nil(t, records[0].ShareLink)

	affected, err = s.Delete(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = s.Delete(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Zero(t, affected)

	version, dirty, err := migrations.Version(cfg)
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(2), version)
}
