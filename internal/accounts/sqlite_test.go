package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_EmptyMeansNotRegistered(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	c, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestSQLiteStore_SaveGetOverwriteClear(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSQLiteStore(db)

	first := Credential{Username: "kyl_1", Password: "Ch&&sec@ke99!", Phone: "+27838968976", FirstName: "Kyle", LastName: "Smith"}
	require.NoError(t, s.Save(ctx, first))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first, *got)

	second := Credential{Username: "new_1", Password: "N3w&Passw0rd", Phone: "+27712345678", FirstName: "New", LastName: "User"}
	require.NoError(t, s.Save(ctx, second))

	got, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, *got)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	assert.Equal(t, 5, n, "overwrite must not duplicate keys")

	require.NoError(t, s.Clear(ctx))
	got, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_WithService(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewSQLiteStore(setupDB(t)))

	_, err := svc.Register(ctx, "ab_cd", "Ch&&sec@ke99!", "+27834557896", "Ann", "Bee")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "ab_cd", "Ch&&sec@ke99!")
	require.NoError(t, err)
	assert.Equal(t, "Welcome Ann,Bee it is great to see you again.", res.Message)
}

func TestSQLiteStore_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT key, value FROM metadata`).WillReturnError(errors.New("db down"))

	_, err = NewSQLiteStore(db).Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select credential")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SaveRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO metadata`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO metadata`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = NewSQLiteStore(db).Save(context.Background(), Credential{Username: "ab_cd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata[password]")
	require.NoError(t, mock.ExpectationsWereMet())
}
