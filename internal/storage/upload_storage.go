package storage

import (
	"context"
	"database/sql"
	"fmt"

	"ProjectUploadService/internal/config"
	"ProjectUploadService/internal/errs"
	"ProjectUploadService/internal/models"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// UploadStorage runs the four upload statements, each on its own connection.
type UploadStorage struct {
	db  *sql.DB
	log zerolog.Logger

	insertQuery string
	selectQuery string
	updateQuery string
	deleteQuery string
}

func NewUploadStorage(db *sql.DB, driver string, log zerolog.Logger) *UploadStorage {
	ph := placeholders(driver)
	return &UploadStorage{
		db:  db,
		log: log.With().Str("component", "storage").Logger(),
		insertQuery: fmt.Sprintf(`
			INSERT INTO upload (email, password, address, projectTitle, projectDescription, projectExperience, shareLink)
			VALUES (%s, %s, %s, %s, %s, %s, %s)`,
			ph(1), ph(2), ph(3), ph(4), ph(5), ph(6), ph(7)),
		selectQuery: `
			SELECT email, password, address, projectTitle, projectDescription, projectExperience, shareLink
			FROM upload`,
		updateQuery: fmt.Sprintf(`
			UPDATE upload SET
				password = %s,
				address = %s,
				projectTitle = %s,
				projectDescription = %s,
				projectExperience = %s,
				shareLink = %s
			WHERE email = %s`,
			ph(1), ph(2), ph(3), ph(4), ph(5), ph(6), ph(7)),
		deleteQuery: fmt.Sprintf(`DELETE FROM upload WHERE email = %s`, ph(1)),
	}
}

func placeholders(driver string) func(int) string {
	if driver == config.DriverPostgres {
		return func(n int) string { return fmt.Sprintf("$%d", n) }
	}
	return func(int) string { return "?" }
}

// withConn acquires a dedicated connection, hands it to fn and releases it on
// every return path. A failed release is logged and dropped so it never
// changes the outcome of fn.
func (s *UploadStorage) withConn(ctx context.Context, op string, fn func(conn *sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return errs.NewDatabaseError(op, errors.Wrap(err, "acquire connection"))
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			s.log.Error().Err(cerr).Str("op", op).Msg("withConn(): failed to release connection")
		}
	}()

	if err := fn(conn); err != nil {
		return errs.NewDatabaseError(op, err)
	}
	return nil
}

// Create inserts a new row. No duplicate-email check is made.
func (s *UploadStorage) Create(ctx context.Context, r models.UploadRecord) error {
	return s.withConn(ctx, "create", func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, s.insertQuery,
			r.Email, r.Password, r.Address, r.ProjectTitle,
			nullable(r.ProjectDescription), nullable(r.ProjectExperience), nullable(r.ShareLink))
		return errors.Wrap(err, "insert upload")
	})
}

// List returns every row in the order the database yields them.
func (s *UploadStorage) List(ctx context.Context) ([]models.UploadRecord, error) {
	records := make([]models.UploadRecord, 0)

	err := s.withConn(ctx, "list", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, s.selectQuery)
		if err != nil {
			return errors.Wrap(err, "select upload")
		}
		defer rows.Close()

		for rows.Next() {
			var (
				email, password, address, title sql.NullString
				description, experience, link   sql.NullString
			)
			if err := rows.Scan(&email, &password, &address, &title, &description, &experience, &link); err != nil {
				return errors.Wrap(err, "scan upload row")
			}
			records = append(records, models.UploadRecord{
				Email:              email.String,
				Password:           password.String,
				Address:            address.String,
				ProjectTitle:       title.String,
				ProjectDescription: stringPtr(description),
				ProjectExperience:  stringPtr(experience),
				ShareLink:          stringPtr(link),
			})
		}
		return errors.Wrap(rows.Err(), "iterate upload rows")
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Update overwrites every non-key column of the rows matching r.Email and
// reports how many rows matched. Zero is not an error.
func (s *UploadStorage) Update(ctx context.Context, r models.UploadRecord) (int64, error) {
	var affected int64
	err := s.withConn(ctx, "update", func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, s.updateQuery,
			r.Password, r.Address, r.ProjectTitle,
			nullable(r.ProjectDescription), nullable(r.ProjectExperience), nullable(r.ShareLink),
			r.Email)
		if err != nil {
			return errors.Wrap(err, "update upload")
		}
		affected = rowsAffected(res)
		return nil
	})
	return affected, err
}

// Delete removes every row matching email and reports how many were removed.
func (s *UploadStorage) Delete(ctx context.Context, email string) (int64, error) {
	var affected int64
	err := s.withConn(ctx, "delete", func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, s.deleteQuery, email)
		if err != nil {
			return errors.Wrap(err, "delete upload")
		}
		affected = rowsAffected(res)
		return nil
	})
	return affected, err
}

// Ping checks that a connection can be acquired and used.
func (s *UploadStorage) Ping(ctx context.Context) error {
	return s.withConn(ctx, "ping", func(conn *sql.Conn) error {
		return errors.Wrap(conn.PingContext(ctx), "ping")
	})
}

func rowsAffected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return -1
	}
	return n
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
