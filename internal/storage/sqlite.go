package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/quickchat/internal/dbx"
	"github.com/dmitrijs2005/quickchat/internal/messages"
	"github.com/dmitrijs2005/quickchat/internal/storage/migrations"
)

// RunMigrations brings the schema up to date. Running it twice is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite file at dsn and applies migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers anyway; one connection keeps :memory: databases shared
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// SQLiteRepository stores both boxes in the messages table, ordered by
// position.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context, box Box) ([]*messages.Message, error) {
	if !box.Valid() {
		return nil, fmt.Errorf("unknown box %q", box)
	}

	query := `SELECT id, hash, recipient, content, number FROM messages WHERE box = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, string(box))
	if err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}
	defer rows.Close()

	result := []*messages.Message{}
	for rows.Next() {
		var (
			id, hash, recipient, content string
			number                       int
		)
		if err := rows.Scan(&id, &hash, &recipient, &content, &number); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		result = append(result, messages.Restore(id, hash, recipient, content, number))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Save deletes the box and reinserts list inside one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, box Box, list []*messages.Message) error {
	if !box.Valid() {
		return fmt.Errorf("unknown box %q", box)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE box = ?`, string(box)); err != nil {
			return fmt.Errorf("failed to clear box: %w", err)
		}
		for i, m := range list {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO messages (box, position, id, hash, recipient, content, number)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, string(box), i, m.ID(), m.Hash(), m.Recipient(), m.Content(), m.Number())
			if err != nil {
				return fmt.Errorf("failed to insert message %d: %w", i, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// DB exposes the handle so the credential store can share it.
func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

var (
	_ Repository = (*SQLiteRepository)(nil)
	_ Repository = (*JSONRepository)(nil)
)
