package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"ProjectUploadService/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// OpenDB opens the connection pool described by cfg.
//
// sql.Open does not dial, so a bad host only surfaces on first use.
func OpenDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("OpenDB(): failed to open database: %w", err)
	}

	// MaxIdleConns 0 이면 요청마다 새 커넥션을 연결하고 반납 시 닫음
	// (sqlite :memory: 는 커넥션마다 빈 DB 가 되므로 config 에서 거부)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	return db, nil
}

// DSN turns the configured connect string into a driver data source name.
func DSN(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return cfg.ConnectString, nil

	case config.DriverPostgres:
		cs := cfg.ConnectString
		if strings.HasPrefix(cs, "postgres://") || strings.HasPrefix(cs, "postgresql://") {
			return cs, nil
		}
		// host:port/dbname 형식 (Oracle easy connect 와 동일한 모양)
		u := &url.URL{Scheme: "postgres", Host: cs}
		if i := strings.IndexAny(cs, "/?"); i >= 0 {
			u.Host = cs[:i]
			rest, err := url.Parse(cs[i:])
			if err != nil {
				return "", fmt.Errorf("DSN(): invalid connect string %q: %w", cs, err)
			}
			u.Path = rest.Path
			u.RawQuery = rest.RawQuery
		}
		if cfg.User != "" {
			if cfg.Password != "" {
				u.User = url.UserPassword(cfg.User, cfg.Password)
			} else {
				u.User = url.User(cfg.User)
			}
		}
		return u.String(), nil

	default:
		return "", fmt.Errorf("DSN(): unsupported driver %q", cfg.Driver)
	}
}
