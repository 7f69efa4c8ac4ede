package accounts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/quickchat/internal/dbx"
)

const (
	keyUsername  = "username"
	keyPassword  = "password"
	keyPhone     = "phone"
	keyFirstName = "first_name"
	keyLastName  = "last_name"
)

// SQLiteStore keeps the credential as rows of the metadata (key, value) table.
// The table is created by the storage migrations.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get loads all credential keys. A missing username means nobody registered.
func (s *SQLiteStore) Get(ctx context.Context) (*Credential, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM metadata WHERE key IN (?, ?, ?, ?, ?)`,
		keyUsername, keyPassword, keyPhone, keyFirstName, keyLastName)
	if err != nil {
		return nil, fmt.Errorf("failed to select credential: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, 5)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan credential row: %w", err)
		}
		values[key] = string(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate credential rows: %w", err)
	}

	username, ok := values[keyUsername]
	if !ok {
		return nil, nil
	}
	return &Credential{
		Username:  username,
		Password:  values[keyPassword],
		Phone:     values[keyPhone],
		FirstName: values[keyFirstName],
		LastName:  values[keyLastName],
	}, nil
}

// Save upserts every credential key in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, c Credential) error {
	pairs := [][2]string{
		{keyUsername, c.Username},
		{keyPassword, c.Password},
		{keyPhone, c.Phone},
		{keyFirstName, c.FirstName},
		{keyLastName, c.LastName},
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, p := range pairs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO metadata (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, p[0], []byte(p[1]))
			if err != nil {
				return fmt.Errorf("failed to set metadata[%s]: %w", p[0], err)
			}
		}
		return nil
	})
}

// Clear deletes every credential key.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE key IN (?, ?, ?, ?, ?)`,
		keyUsername, keyPassword, keyPhone, keyFirstName, keyLastName)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
