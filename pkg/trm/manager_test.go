package trm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/driver-dashboard/pkg/trm"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE items (id TEXT PRIMARY KEY)`)
	require.NoError(t, err)
	return db
}

func count(t *testing.T, db *sqlx.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM items`))
	return n
}

func insert(ctx context.Context, id string) error {
	tx := trm.ExtractTx(ctx)
	if tx == nil {
		return errors.New("no tx in context")
	}
	_, err := tx.ExecContext(ctx, `INSERT INTO items (id) VALUES (?)`, id)
	return err
}

func TestManager_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		db := newDB(t)
		m := trm.NewManager(db)

		err := m.Do(ctx, func(ctx context.Context) error {
			return insert(ctx, "a")
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count(t, db))
	})

	t.Run("rollback on error", func(t *testing.T) {
		db := newDB(t)
		m := trm.NewManager(db)
		failure := errors.New("boom")

		err := m.Do(ctx, func(ctx context.Context) error {
			require.NoError(t, insert(ctx, "a"))
			return failure
		})
		assert.ErrorIs(t, err, failure)
		assert.Equal(t, 0, count(t, db))
	})

	t.Run("nested joins outer tx", func(t *testing.T) {
		db := newDB(t)
		m := trm.NewManager(db)
		failure := errors.New("boom")

		err := m.Do(ctx, func(ctx context.Context) error {
			outer := trm.ExtractTx(ctx)
			err := m.Do(ctx, func(ctx context.Context) error {
				assert.Same(t, outer, trm.ExtractTx(ctx))
				return insert(ctx, "a")
			})
			require.NoError(t, err)
			return failure
		})
		assert.ErrorIs(t, err, failure)
		// вложенный Do не фиксирует: откат внешней отменяет вставку
		assert.Equal(t, 0, count(t, db))
	})
}
