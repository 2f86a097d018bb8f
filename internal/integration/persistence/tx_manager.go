// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/savings-goals/backend/internal/application/adapter"
)

// txKey is the context key under which an open transaction travels.
type txKey struct{}

// txManager implements adapter.TxManager on top of GORM transactions.
type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager instance.
func NewTxManager(db *gorm.DB) adapter.TxManager {
	return &txManager{
		db: db,
	}
}

// WithinTransaction runs fn inside one database transaction. The
// transaction handle is carried on the derived context; repositories in
// this package pick it up via dbFromContext, so every repository call
// made with txCtx joins the same transaction.
func (m *txManager) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext returns the transaction bound to ctx, or fallback when
// the call happens outside a managed transaction.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}
