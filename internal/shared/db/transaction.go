// Package db carries the transaction plumbing shared by the GORM
// repositories. A use case opens a transaction once; every repository
// call made with the resulting context joins it.
package db

import (
	"context"

	"gorm.io/gorm"

	"helperdesk/internal/shared/logger"
)

// txKey marks the active transaction inside a context.
type txKey struct{}

// TransactionManager wraps a unit of work in a single database
// transaction.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a transaction and commits when it
// returns nil; any error rolls the whole unit of work back. A context
// that already carries a transaction joins it instead of opening a
// nested one.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil {
		logger.Debug("transaction rolled back", "error", err)
	}
	return err
}

// GetTxFromContext returns the transaction carried by ctx, or the
// given DB bound to ctx when no transaction is open. Repositories call
// this on every operation so they work the same inside and outside a
// unit of work.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
