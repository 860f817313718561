package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type txRecord struct {
	ID   uint `gorm:"primarykey"`
	Name string
}

func setupDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&txRecord{}))
	return database
}

func countRecords(t *testing.T, database *gorm.DB) int64 {
	var total int64
	require.NoError(t, database.Model(&txRecord{}).Count(&total).Error)
	return total
}

func TestRunInTransaction_CommitsOnSuccess(t *testing.T) {
	database := setupDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return GetTxFromContext(ctx, database).Create(&txRecord{Name: "kept"}).Error
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), countRecords(t, database))
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	database := setupDB(t)
	tm := NewTransactionManager(database)
	boom := errors.New("boom")

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := GetTxFromContext(ctx, database).Create(&txRecord{Name: "discarded"}).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int64(0), countRecords(t, database))
}

func TestRunInTransaction_JoinsOuterTransaction(t *testing.T) {
	database := setupDB(t)
	tm := NewTransactionManager(database)
	boom := errors.New("boom")

	// the inner call joins the outer transaction, so its writes roll
	// back together with the outer ones
	err := tm.RunInTransaction(context.Background(), func(outerCtx context.Context) error {
		if err := GetTxFromContext(outerCtx, database).Create(&txRecord{Name: "outer"}).Error; err != nil {
			return err
		}
		if err := tm.RunInTransaction(outerCtx, func(innerCtx context.Context) error {
			return GetTxFromContext(innerCtx, database).Create(&txRecord{Name: "inner"}).Error
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int64(0), countRecords(t, database))
}

func TestGetTxFromContext_FallsBackToDefault(t *testing.T) {
	database := setupDB(t)

	tx := GetTxFromContext(context.Background(), database)
	require.NoError(t, tx.Create(&txRecord{Name: "direct"}).Error)
	assert.Equal(t, int64(1), countRecords(t, database))
}
